// internals/persistence/errors.go
package persistence

import "errors"

/* ===============================
   Jenis error gateway
   Caller (controller) yang memetakan ke status HTTP.
=================================*/

var (
	// ErrNotFound: baris tidak ada ATAU di luar scope school caller.
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrTenantRequired: operasi tulis butuh school context dan tidak ada
	// yang bisa di-resolve (tidak dikirim caller, tidak ada di context).
	ErrTenantRequired = errors.New("school context wajib ada untuk operasi ini")

	// ErrCrossTenant: referensi antar entitas menunjuk ke school lain.
	ErrCrossTenant = errors.New("referensi lintas school tidak diizinkan")

	// ErrConcurrencyConflict: row_version yang diharapkan sudah basi.
	// Caller harus muat ulang data lalu ulangi perubahan.
	ErrConcurrencyConflict = errors.New("data sudah berubah sejak terakhir dimuat, silakan muat ulang")
)
