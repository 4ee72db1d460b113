// internals/persistence/callbacks.go
package persistence

import (
	"reflect"
	"time"

	"gorm.io/gorm"
)

/* ===============================
   Callback gateway
   Dipasang sekali per koneksi (ConnectDB & test). Semua create/update lewat
   sini, jadi stamping audit + tenant tidak perlu diulang di tiap service.
=================================*/

func RegisterCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("magangku:stamp_create", stampCreate); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").
		Register("magangku:stamp_update", stampUpdate); err != nil {
		return err
	}
	return nil
}

// stampCreate: isi created_by + school_id untuk entity baru.
// school_id hanya distempel kalau caller belum mengisinya sendiri —
// pilihan tenant eksplisit tidak boleh ditimpa.
func stampCreate(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}
	ctx := db.Statement.Context

	if f := db.Statement.Schema.LookUpField("created_by"); f != nil {
		actor := ActorFrom(ctx)
		eachStatementValue(db, func(rv reflect.Value) {
			if _, zero := f.ValueOf(ctx, rv); zero {
				_ = f.Set(ctx, rv, actor)
			}
		})
	}

	if f := db.Statement.Schema.LookUpField("school_id"); f != nil {
		sid, hasTenant := SchoolIDFrom(ctx)
		missing := false
		eachStatementValue(db, func(rv reflect.Value) {
			if _, zero := f.ValueOf(ctx, rv); zero {
				if hasTenant {
					_ = f.Set(ctx, rv, sid)
				} else {
					missing = true
				}
			}
		})
		if missing {
			// Jangan diam-diam bikin baris yatim tanpa school.
			_ = db.AddError(ErrTenantRequired)
		}
	}
}

// stampUpdate: refresh updated_at/updated_by di setiap update
// (termasuk konversi delete → soft delete yang jalan sebagai UPDATE).
func stampUpdate(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}
	ctx := db.Statement.Context

	if f := db.Statement.Schema.LookUpField("updated_at"); f != nil {
		db.Statement.SetColumn("updated_at", time.Now(), true)
	}
	if f := db.Statement.Schema.LookUpField("updated_by"); f != nil {
		db.Statement.SetColumn("updated_by", ActorFrom(ctx), true)
	}
}

// eachStatementValue: jalankan fn untuk tiap model di statement
// (Create bisa menerima satu struct atau slice).
func eachStatementValue(db *gorm.DB, fn func(reflect.Value)) {
	switch db.Statement.ReflectValue.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < db.Statement.ReflectValue.Len(); i++ {
			fn(db.Statement.ReflectValue.Index(i))
		}
	case reflect.Struct:
		fn(db.Statement.ReflectValue)
	}
}
