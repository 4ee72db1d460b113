package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess   = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
// Kebijakan akses selalu eksplisit: role yang tidak masuk daftar = ditolak.
// Tidak ada fallback "izinkan semua" saat konfigurasi kosong.
var (
	AdminAndAbove   = []string{RoleAdmin, RoleOwner}
	TeacherAndAbove = []string{RoleTeacher, RoleAdmin, RoleOwner}
	OwnerOnly       = []string{RoleOwner}
)
