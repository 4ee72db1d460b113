// internals/features/placements/service/employer_form_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

/* ===============================
   Orchestrator: employer acceptance form
   Satu-satunya jalur yang memajukan pending_employer → pending_parent.
   Caller anonim (pegang token), jadi semua load di sini tanpa scope
   tenant — soft-deleted tetap tersaring.
=================================*/

type EmployerFormService struct {
	db     *gorm.DB
	tokens *FormTokenService

	placements  *persistence.Repo[model.PlacementModel]
	students    *persistence.Repo[studentModel.StudentModel]
	companies   *persistence.Repo[companyModel.CompanyModel]
	supervisors *persistence.Repo[companyModel.SupervisorModel]
}

func NewEmployerFormService(db *gorm.DB) *EmployerFormService {
	return &EmployerFormService{
		db:          db,
		tokens:      NewFormTokenService(db),
		placements:  persistence.NewTenantRepo[model.PlacementModel](db, "placement_id"),
		students:    persistence.NewTenantRepo[studentModel.StudentModel](db, "student_id"),
		companies:   persistence.NewTenantRepo[companyModel.CompanyModel](db, "company_id"),
		supervisors: persistence.NewTenantRepo[companyModel.SupervisorModel](db, "supervisor_id"),
	}
}

// resolveToken: token harus ada, masih valid, dan jenisnya cocok.
// Semua kegagalan anonim dipulangkan sebagai nil, bukan error.
func (s *EmployerFormService) resolveToken(ctx context.Context, token string) (*model.FormTokenModel, error) {
	tok, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if tok == nil || !tok.IsValid() || tok.FormTokenFormType != model.FormTypeEmployerAcceptance {
		return nil, nil
	}
	return tok, nil
}

// InitializeForm: token valid → view-model prefilled dari state sekarang.
// Relasi yang belum ada jadi section kosong, bukan error.
func (s *EmployerFormService) InitializeForm(ctx context.Context, token string) (*dto.EmployerFormDTO, error) {
	tok, err := s.resolveToken(ctx, token)
	if err != nil || tok == nil {
		return nil, err
	}

	placement, err := s.placements.ByID(ctx, tok.FormTokenPlacementID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	student, err := s.students.ByID(ctx, placement.PlacementStudentID, nil)
	if err != nil && err != persistence.ErrNotFound {
		return nil, err
	}

	var company *companyModel.CompanyModel
	if placement.PlacementCompanyID != nil {
		company, err = s.companies.ByID(ctx, *placement.PlacementCompanyID, nil)
		if err != nil && err != persistence.ErrNotFound {
			return nil, err
		}
	}
	var supervisor *companyModel.SupervisorModel
	if placement.PlacementSupervisorID != nil {
		supervisor, err = s.supervisors.ByID(ctx, *placement.PlacementSupervisorID, nil)
		if err != nil && err != persistence.ErrNotFound {
			return nil, err
		}
	}

	return dto.NewEmployerFormDTO(placement, student, company, supervisor), nil
}

// SubmitForm: commit seluruh isian employer sebagai SATU transaksi —
// company, supervisor, kolom K3 placement, lalu token dibakar terakhir.
// Gagal di tengah = rollback total, token tetap hidup untuk dicoba ulang.
func (s *EmployerFormService) SubmitForm(ctx context.Context, token string, req *dto.EmployerFormSubmitRequest) (bool, error) {
	tok, err := s.resolveToken(ctx, token)
	if err != nil {
		return false, err
	}
	if tok == nil {
		return false, nil
	}

	placement, err := s.placements.ByID(ctx, tok.FormTokenPlacementID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// --- Company: update in place; buat baru kalau placement belum punya.
		if placement.PlacementCompanyID != nil {
			company, err := s.companies.WithTx(tx).ByID(ctx, *placement.PlacementCompanyID, nil)
			if err != nil {
				return err
			}
			applyEmployerCompany(company, &req.Company)
			if err := s.companies.WithTx(tx).Update(ctx, company, nil); err != nil {
				return err
			}
		} else if req.Company.CompanyName != "" {
			company := &companyModel.CompanyModel{CompanyName: req.Company.CompanyName}
			company.SchoolID = placement.SchoolID
			applyEmployerCompany(company, &req.Company)
			if err := s.companies.WithTx(tx).Create(ctx, company); err != nil {
				return err
			}
			placement.PlacementCompanyID = &company.CompanyID
		}

		// --- Supervisor: sama — update kalau ada, buat kalau belum.
		if placement.PlacementSupervisorID != nil {
			sup, err := s.supervisors.WithTx(tx).ByID(ctx, *placement.PlacementSupervisorID, nil)
			if err != nil {
				return err
			}
			applyEmployerSupervisor(sup, &req.Supervisor)
			if err := s.supervisors.WithTx(tx).Update(ctx, sup, nil); err != nil {
				return err
			}
		} else if req.Supervisor.SupervisorName != "" && placement.PlacementCompanyID != nil {
			sup := &companyModel.SupervisorModel{
				SupervisorCompanyID: *placement.PlacementCompanyID,
			}
			sup.SchoolID = placement.SchoolID
			applyEmployerSupervisor(sup, &req.Supervisor)
			if err := s.supervisors.WithTx(tx).Create(ctx, sup); err != nil {
				return err
			}
			placement.PlacementSupervisorID = &sup.SupervisorID
		}

		// --- Placement: kolom K3 + stempel submit + status maju satu langkah.
		req.Safety.ApplyToModel(placement)
		now := time.Now()
		placement.PlacementEmployerSubmittedAt = &now
		if placement.PlacementStatus == model.PlacementPendingEmployer {
			placement.PlacementStatus = model.PlacementPendingParent
		}
		if err := s.placements.WithTx(tx).Update(ctx, placement, nil); err != nil {
			return err
		}

		// --- Token dibakar paling akhir.
		return s.tokens.MarkUsed(ctx, tx, tok.FormTokenID)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func applyEmployerCompany(m *companyModel.CompanyModel, sec *dto.EmployerFormCompanySection) {
	if sec.CompanyAddress != nil {
		m.CompanyAddress = sec.CompanyAddress
	}
	if sec.CompanyCity != nil {
		m.CompanyCity = sec.CompanyCity
	}
	if sec.CompanyProvince != nil {
		m.CompanyProvince = sec.CompanyProvince
	}
	if sec.CompanyPostcode != nil {
		m.CompanyPostcode = sec.CompanyPostcode
	}
	if sec.CompanyPhone != nil {
		m.CompanyPhone = sec.CompanyPhone
	}
	if sec.CompanyEmail != nil {
		m.CompanyEmail = sec.CompanyEmail
	}
	if sec.CompanyWebsite != nil {
		m.CompanyWebsite = sec.CompanyWebsite
	}
	if sec.InsuranceProvider != nil {
		m.CompanyInsuranceProvider = sec.InsuranceProvider
	}
	if sec.InsurancePolicyNumber != nil {
		m.CompanyInsurancePolicyNumber = sec.InsurancePolicyNumber
	}
	if sec.InsuranceExpiryDate != nil {
		m.CompanyInsuranceExpiryDate = sec.InsuranceExpiryDate
	}
}

func applyEmployerSupervisor(m *companyModel.SupervisorModel, sec *dto.EmployerFormSupervisorSection) {
	if sec.SupervisorName != "" {
		m.SupervisorName = sec.SupervisorName
	}
	if sec.SupervisorPosition != nil {
		m.SupervisorPosition = sec.SupervisorPosition
	}
	if sec.SupervisorPhone != nil {
		m.SupervisorPhone = sec.SupervisorPhone
	}
	if sec.SupervisorEmail != nil {
		m.SupervisorEmail = sec.SupervisorEmail
	}
}
