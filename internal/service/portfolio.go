package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
	"github.com/omranyar/portfolio-engine/internal/repository"
)

// PortfolioService owns every mutation of the program/project/subproject
// hierarchy. All writes funnel through propagate, which recomputes the
// derived state bottom-up inside the caller's transaction.
type PortfolioService struct {
	db          *gorm.DB
	programs    *repository.ProgramRepository
	projects    *repository.ProjectRepository
	subProjects *repository.SubProjectRepository
	documents   *repository.DocumentRepository
	history     *repository.HistoryRepository
	identifiers *IdentifierService
	log         zerolog.Logger
	now         func() time.Time
}

func NewPortfolioService(
	db *gorm.DB,
	programs *repository.ProgramRepository,
	projects *repository.ProjectRepository,
	subProjects *repository.SubProjectRepository,
	documents *repository.DocumentRepository,
	history *repository.HistoryRepository,
	identifiers *IdentifierService,
	log zerolog.Logger,
) *PortfolioService {
	return &PortfolioService{
		db:          db,
		programs:    programs,
		projects:    projects,
		subProjects: subProjects,
		documents:   documents,
		history:     history,
		identifiers: identifiers,
		log:         log,
		now:         time.Now,
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- programs ---

func (s *PortfolioService) GetProgram(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	program, err := s.programs.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return program, nil
}

// GetProgramByCode resolves a 6-digit business identifier to its program.
func (s *PortfolioService) GetProgramByCode(ctx context.Context, code string) (*model.Program, error) {
	program, err := s.programs.GetByCode(ctx, code)
	if err != nil {
		return nil, notFound(err)
	}
	return program, nil
}

func (s *PortfolioService) ListPrograms(ctx context.Context, p model.Principal) ([]model.Program, error) {
	var provinces []model.Province
	if p.IsProvinceManager() || p.IsExpert() {
		provinces = p.Provinces
	}
	return s.programs.List(ctx, provinces)
}

func (s *PortfolioService) CreateProgram(ctx context.Context, p model.Principal, program *model.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	if !p.HasProvince(program.Province) {
		return fmt.Errorf("%w: province %s", ErrPermissionDenied, program.Province)
	}

	code, err := s.identifiers.Generate(ctx, func(ctx context.Context, id string) (bool, error) {
		return s.programs.CodeExists(ctx, id)
	})
	if err != nil {
		return err
	}
	program.ProgramID = code
	program.CreatedByID = p.UserID

	if err := s.programs.Create(ctx, program); err != nil {
		return err
	}
	s.log.Info().
		Str("program_id", program.ProgramID).
		Str("province", string(program.Province)).
		Msg("program created")
	return nil
}

func (s *PortfolioService) UpdateProgram(ctx context.Context, p model.Principal, program *model.Program) error {
	current, err := s.programs.Get(ctx, program.ID)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(current.CreatedByID, current.Province) {
		return ErrPermissionDenied
	}
	if err := validateProgram(program); err != nil {
		return err
	}
	program.ProgramID = current.ProgramID
	program.CreatedByID = current.CreatedByID

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.programs.WithTx(tx).Update(ctx, program); err != nil {
			return err
		}

		// Province and city mirror down to every child project.
		children, err := s.projects.WithTx(tx).ListByProgram(ctx, program.ID)
		if err != nil {
			return err
		}
		for i := range children {
			child := &children[i]
			if child.Province == program.Province && child.City == program.City {
				continue
			}
			child.Province = program.Province
			child.City = program.City
			if err := s.projects.WithTx(tx).Update(ctx, child); err != nil {
				return err
			}
		}

		if err := s.recordDiffs(ctx, tx, model.KindProgram, program.ID, p.UserID, DiffProgram(current, program)); err != nil {
			return err
		}
		// An owner edit voids any standing approvals.
		if p.UserID == current.CreatedByID && (current.IsSubmitted || current.IsExpertApproved || current.IsApproved) {
			if err := s.programs.WithTx(tx).UpdateReviewFlags(ctx, program.ID, false, false, false); err != nil {
				return err
			}
		}
		return s.refreshProgram(ctx, tx, program.ID)
	})
}

func (s *PortfolioService) DeleteProgram(ctx context.Context, p model.Principal, id uuid.UUID) error {
	program, err := s.programs.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(program.CreatedByID, program.Province) {
		return ErrPermissionDenied
	}
	count, err := s.programs.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: program has %d projects", ErrDependencyLocked, count)
	}
	return s.programs.Delete(ctx, id)
}

// --- projects ---

func (s *PortfolioService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return project, nil
}

// GetProjectByCode resolves a 6-digit business identifier to its project.
func (s *PortfolioService) GetProjectByCode(ctx context.Context, code string) (*model.Project, error) {
	project, err := s.projects.GetByCode(ctx, code)
	if err != nil {
		return nil, notFound(err)
	}
	return project, nil
}

func (s *PortfolioService) ListProjects(ctx context.Context, p model.Principal) ([]model.Project, error) {
	var provinces []model.Province
	if p.IsProvinceManager() || p.IsExpert() {
		provinces = p.Provinces
	}
	return s.projects.List(ctx, provinces)
}

func (s *PortfolioService) CreateProject(ctx context.Context, p model.Principal, project *model.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}
	if project.ProgramID != nil {
		program, err := s.programs.Get(ctx, *project.ProgramID)
		if err != nil {
			return notFound(err)
		}
		project.Province = program.Province
		project.City = program.City
	}
	if !p.HasProvince(project.Province) {
		return fmt.Errorf("%w: province %s", ErrPermissionDenied, project.Province)
	}

	code, err := s.identifiers.Generate(ctx, func(ctx context.Context, id string) (bool, error) {
		return s.projects.CodeExists(ctx, id)
	})
	if err != nil {
		return err
	}
	project.ProjectID = code
	project.CreatedByID = p.UserID

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.projects.WithTx(tx).Create(ctx, project); err != nil {
			return err
		}
		if project.ProgramID != nil {
			if err := s.refreshProgram(ctx, tx, *project.ProgramID); err != nil {
				return err
			}
		}
		s.log.Info().
			Str("project_id", project.ProjectID).
			Str("province", string(project.Province)).
			Msg("project created")
		return nil
	})
}

func (s *PortfolioService) UpdateProject(ctx context.Context, p model.Principal, project *model.Project) error {
	current, err := s.projects.Get(ctx, project.ID)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(current.CreatedByID, current.Province) {
		return ErrPermissionDenied
	}
	if err := validateProject(project); err != nil {
		return err
	}
	project.ProjectID = current.ProjectID
	project.CreatedByID = current.CreatedByID

	if project.ProgramID != nil {
		program, err := s.programs.Get(ctx, *project.ProgramID)
		if err != nil {
			return notFound(err)
		}
		project.Province = program.Province
		project.City = program.City
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.projects.WithTx(tx).Update(ctx, project); err != nil {
			return err
		}
		if err := s.recordDiffs(ctx, tx, model.KindProject, project.ID, p.UserID, DiffProject(current, project)); err != nil {
			return err
		}
		// An owner edit voids any standing approvals.
		if p.UserID == current.CreatedByID && (current.IsSubmitted || current.IsExpertApproved || current.IsApproved) {
			if err := s.projects.WithTx(tx).UpdateReviewFlags(ctx, project.ID, false, false, false); err != nil {
				return err
			}
		}
		if err := s.propagate(ctx, tx, project.ID); err != nil {
			return err
		}
		// Reparenting refreshes the abandoned program too.
		if current.ProgramID != nil && (project.ProgramID == nil || *current.ProgramID != *project.ProgramID) {
			return s.refreshProgram(ctx, tx, *current.ProgramID)
		}
		return nil
	})
}

func (s *PortfolioService) DeleteProject(ctx context.Context, p model.Principal, id uuid.UUID) error {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(project.CreatedByID, project.Province) {
		return ErrPermissionDenied
	}
	count, err := s.projects.CountSubProjects(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: project has %d subprojects", ErrDependencyLocked, count)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.projects.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		if project.ProgramID != nil {
			return s.refreshProgram(ctx, tx, *project.ProgramID)
		}
		return nil
	})
}

// --- subprojects ---

func (s *PortfolioService) GetSubProject(ctx context.Context, id uuid.UUID) (*model.SubProject, error) {
	sub, err := s.subProjects.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return sub, nil
}

func (s *PortfolioService) ListSubProjects(ctx context.Context, projectID uuid.UUID) ([]model.SubProject, error) {
	return s.subProjects.ListByProject(ctx, projectID)
}

func (s *PortfolioService) CreateSubProject(ctx context.Context, p model.Principal, sub *model.SubProject) error {
	project, err := s.projects.Get(ctx, sub.ProjectID)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(project.CreatedByID, project.Province) {
		return ErrPermissionDenied
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.projects.WithTx(tx).Lock(ctx, sub.ProjectID); err != nil {
			return notFound(err)
		}
		siblings, err := s.subProjects.WithTx(tx).ListByProject(ctx, sub.ProjectID)
		if err != nil {
			return err
		}
		number := model.NextSubProjectNumber(siblings)
		if number == 0 {
			return fmt.Errorf("%w: project already has %d subprojects", ErrValidation, model.MaxSubProjects)
		}
		sub.Number = number
		sub.CreatedByID = p.UserID

		if err := validateSubProject(sub, siblings); err != nil {
			return err
		}
		if err := s.subProjects.WithTx(tx).Create(ctx, sub); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, project)
	})
}

func (s *PortfolioService) UpdateSubProject(ctx context.Context, p model.Principal, sub *model.SubProject) error {
	current, err := s.subProjects.Get(ctx, sub.ID)
	if err != nil {
		return notFound(err)
	}
	project, err := s.projects.Get(ctx, current.ProjectID)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(current.CreatedByID, project.Province) {
		return ErrPermissionDenied
	}
	sub.ProjectID = current.ProjectID
	sub.Number = current.Number
	sub.CreatedByID = current.CreatedByID

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, current.ProjectID)
		if err != nil {
			return notFound(err)
		}
		siblings, err := s.subProjects.WithTx(tx).ListByProject(ctx, current.ProjectID)
		if err != nil {
			return err
		}
		if err := validateSubProject(sub, siblings); err != nil {
			return err
		}
		if err := s.subProjects.WithTx(tx).Update(ctx, sub); err != nil {
			return err
		}
		if err := s.recordDiffs(ctx, tx, model.KindSubProject, sub.ID, p.UserID, DiffSubProject(current, sub)); err != nil {
			return err
		}
		// An owner edit voids any standing approvals.
		if p.UserID == current.CreatedByID && (current.IsSubmitted || current.IsExpertApproved || current.IsApproved) {
			if err := s.subProjects.WithTx(tx).UpdateReviewFlags(ctx, sub.ID, false, false, false); err != nil {
				return err
			}
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) DeleteSubProject(ctx context.Context, p model.Principal, id uuid.UUID) error {
	sub, err := s.subProjects.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	project, err := s.projects.Get(ctx, sub.ProjectID)
	if err != nil {
		return notFound(err)
	}
	if !p.CanModify(sub.CreatedByID, project.Province) {
		return ErrPermissionDenied
	}
	dependents, err := s.subProjects.Dependents(ctx, id)
	if err != nil {
		return err
	}
	if len(dependents) > 0 {
		return fmt.Errorf("%w: subprojects %v depend on this one", ErrDependencyLocked, dependents)
	}
	children, err := s.documents.CountForSubProject(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return fmt.Errorf("%w: subproject has %d financial records", ErrDependencyLocked, children)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, sub.ProjectID)
		if err != nil {
			return notFound(err)
		}
		if err := s.subProjects.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

// --- financial documents and payments ---

func (s *PortfolioService) AddFinancialDocument(ctx context.Context, p model.Principal, doc *model.FinancialDocument) error {
	sub, project, err := s.authorizeSubProject(ctx, p, doc.SubProjectID)
	if err != nil {
		return err
	}
	if err := s.validateDocument(ctx, doc, sub); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		if doc.DocumentNumber == 0 {
			number, err := s.documents.WithTx(tx).NextDocumentNumber(ctx, doc.SubProjectID, doc.DocumentType)
			if err != nil {
				return err
			}
			doc.DocumentNumber = number
		}
		userID := p.UserID
		doc.CreatedByID = &userID
		if err := s.documents.WithTx(tx).Create(ctx, doc); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) UpdateFinancialDocument(ctx context.Context, p model.Principal, doc *model.FinancialDocument) error {
	current, err := s.documents.Get(ctx, doc.ID)
	if err != nil {
		return notFound(err)
	}
	sub, project, err := s.authorizeSubProject(ctx, p, current.SubProjectID)
	if err != nil {
		return err
	}
	doc.SubProjectID = current.SubProjectID
	doc.DocumentType = current.DocumentType
	doc.DocumentNumber = current.DocumentNumber
	if err := s.validateDocument(ctx, doc, sub); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		if err := s.documents.WithTx(tx).Update(ctx, doc); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) DeleteFinancialDocument(ctx context.Context, p model.Principal, id uuid.UUID) error {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	_, project, err := s.authorizeSubProject(ctx, p, doc.SubProjectID)
	if err != nil {
		return err
	}
	references, err := s.documents.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return fmt.Errorf("%w: %d records reference this document", ErrDependencyLocked, references)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		if err := s.documents.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) AddPayment(ctx context.Context, p model.Principal, payment *model.Payment) error {
	_, project, err := s.authorizeSubProject(ctx, p, payment.SubProjectID)
	if err != nil {
		return err
	}
	if err := s.validatePayment(ctx, payment); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		userID := p.UserID
		payment.CreatedByID = &userID
		if err := s.documents.WithTx(tx).CreatePayment(ctx, payment); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) UpdatePayment(ctx context.Context, p model.Principal, payment *model.Payment) error {
	current, err := s.documents.GetPayment(ctx, payment.ID)
	if err != nil {
		return notFound(err)
	}
	_, project, err := s.authorizeSubProject(ctx, p, current.SubProjectID)
	if err != nil {
		return err
	}
	payment.SubProjectID = current.SubProjectID
	if err := s.validatePayment(ctx, payment); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		if err := s.documents.WithTx(tx).UpdatePayment(ctx, payment); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

func (s *PortfolioService) DeletePayment(ctx context.Context, p model.Principal, id uuid.UUID) error {
	payment, err := s.documents.GetPayment(ctx, id)
	if err != nil {
		return notFound(err)
	}
	_, project, err := s.authorizeSubProject(ctx, p, payment.SubProjectID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.projects.WithTx(tx).Lock(ctx, project.ID)
		if err != nil {
			return notFound(err)
		}
		if err := s.documents.WithTx(tx).DeletePayment(ctx, id); err != nil {
			return err
		}
		return s.propagateLocked(ctx, tx, locked)
	})
}

// --- propagation ---

// propagate locks the project row and recomputes everything derived from
// its children. Callers already inside a transaction use it directly.
func (s *PortfolioService) propagate(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
	project, err := s.projects.WithTx(tx).Lock(ctx, projectID)
	if err != nil {
		return notFound(err)
	}
	return s.propagateLocked(ctx, tx, project)
}

// propagateLocked runs the recompute pipeline bottom-up: subproject
// schedules, subproject financial sums, project caches, status and
// progress, then the owning program's opening date and progress.
func (s *PortfolioService) propagateLocked(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	subRepo := s.subProjects.WithTx(tx)
	docRepo := s.documents.WithTx(tx)

	subs, err := subRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}

	if err := ResolveSchedules(subs, s.now()); err != nil {
		return err
	}
	for i := range subs {
		if err := subRepo.UpdateSchedule(ctx, &subs[i]); err != nil {
			return err
		}
	}

	finance := make(map[string]SubProjectFinance, len(subs))
	for i := range subs {
		sub := &subs[i]
		docs, err := docRepo.ListBySubProject(ctx, sub.ID)
		if err != nil {
			return err
		}
		payments, err := docRepo.ListPayments(ctx, sub.ID)
		if err != nil {
			return err
		}
		f := CollectSubProjectFinance(docs, payments)
		finance[sub.ID.String()] = f

		sub.TotalPayments = f.TotalPaymentAmount
		sub.TotalAdjustmentAmount = f.TotalAdjustmentReports
		sub.Debt = SubProjectDebt(sub, f)
		if err := subRepo.UpdateFinancials(ctx, sub); err != nil {
			return err
		}
	}

	caches := ComputeProjectCaches(subs, finance)
	project.CachedTotalDebt = caches.TotalDebt
	project.CachedRequiredCreditContracts = caches.RequiredCreditContracts
	project.CachedRequiredCreditProject = caches.RequiredCreditProject
	project.OverallStatus = model.ProjectStatusOf(subs)
	project.PhysicalProgress = ProjectPhysicalProgress(subs)
	if err := s.projects.WithTx(tx).UpdateDerived(ctx, project); err != nil {
		return err
	}

	if project.ProgramID != nil {
		return s.refreshProgram(ctx, tx, *project.ProgramID)
	}
	return nil
}

// refreshProgram recomputes the program's opening date and weighted
// progress from its child projects.
func (s *PortfolioService) refreshProgram(ctx context.Context, tx *gorm.DB, programID uuid.UUID) error {
	program, err := s.programs.WithTx(tx).Get(ctx, programID)
	if err != nil {
		return notFound(err)
	}
	children, err := s.projects.WithTx(tx).ListByProgram(ctx, programID)
	if err != nil {
		return err
	}

	weights := make(map[string]decimal.Decimal, len(children))
	for i := range children {
		subs, err := s.subProjects.WithTx(tx).ListByProject(ctx, children[i].ID)
		if err != nil {
			return err
		}
		weights[children[i].ID.String()] = ProjectTotalContractAmount(subs)
	}

	program.OpeningDate = model.ProgramOpeningDate(children)
	program.OverallPhysicalProgress = ProgramPhysicalProgress(children, weights)
	return s.programs.WithTx(tx).UpdateDerived(ctx, program)
}

func (s *PortfolioService) ListDocuments(ctx context.Context, subProjectID uuid.UUID) ([]model.FinancialDocument, error) {
	return s.documents.ListBySubProject(ctx, subProjectID)
}

func (s *PortfolioService) ListPayments(ctx context.Context, subProjectID uuid.UUID) ([]model.Payment, error) {
	return s.documents.ListPayments(ctx, subProjectID)
}

// AttachDocumentFile stores an uploaded scan against a financial document.
func (s *PortfolioService) AttachDocumentFile(ctx context.Context, p model.Principal, file *model.DocumentFile) error {
	doc, err := s.documents.Get(ctx, file.DocumentID)
	if err != nil {
		return notFound(err)
	}
	if _, _, err := s.authorizeSubProject(ctx, p, doc.SubProjectID); err != nil {
		return err
	}
	if len(file.Content) == 0 {
		return fmt.Errorf("%w: empty file", ErrValidation)
	}
	if file.MIMEType == "" {
		file.MIMEType = "application/octet-stream"
	}
	return s.documents.AttachFile(ctx, file)
}

func (s *PortfolioService) GetDocumentFile(ctx context.Context, id uuid.UUID) (*model.DocumentFile, error) {
	file, err := s.documents.GetFile(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return file, nil
}

func (s *PortfolioService) ListGallery(ctx context.Context, subProjectID uuid.UUID) ([]model.GalleryImage, error) {
	return s.documents.ListGallery(ctx, subProjectID)
}

func (s *PortfolioService) AddGalleryImage(ctx context.Context, p model.Principal, image *model.GalleryImage) error {
	if _, _, err := s.authorizeSubProject(ctx, p, image.SubProjectID); err != nil {
		return err
	}
	if len(image.Content) == 0 {
		return fmt.Errorf("%w: empty image", ErrValidation)
	}
	if image.MIMEType == "" {
		image.MIMEType = "image/jpeg"
	}
	return s.documents.AddGalleryImage(ctx, image)
}

func (s *PortfolioService) GetGalleryImage(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	image, err := s.documents.GetGalleryImage(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return image, nil
}

func (s *PortfolioService) DeleteGalleryImage(ctx context.Context, p model.Principal, id uuid.UUID) error {
	image, err := s.documents.GetGalleryImage(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if _, _, err := s.authorizeSubProject(ctx, p, image.SubProjectID); err != nil {
		return err
	}
	return s.documents.DeleteGalleryImage(ctx, id)
}

// ProjectLatestPayments computes the project's "latest payment" total from
// both candidate sources: the newest situation-style financial document per
// subproject, and the newest legacy situation report per subproject.
func (s *PortfolioService) ProjectLatestPayments(ctx context.Context, projectID uuid.UUID) (*LatestPaymentViews, error) {
	subs, err := s.subProjects.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var views LatestPaymentViews
	for i := range subs {
		docs, err := s.documents.ListBySubProject(ctx, subs[i].ID)
		if err != nil {
			return nil, err
		}
		f := CollectSubProjectFinance(docs, nil)
		views.FromDocuments = views.FromDocuments.Add(f.SituationReportAmount)

		reports, err := s.documents.ListSituationReports(ctx, subs[i].ID)
		if err != nil {
			return nil, err
		}
		views.FromSituationReports = views.FromSituationReports.Add(LatestSituationReportAmount(reports))
	}
	return &views, nil
}

// ListSituationReports returns the legacy statement rows of a subproject.
func (s *PortfolioService) ListSituationReports(ctx context.Context, subProjectID uuid.UUID) ([]model.SituationReport, error) {
	return s.documents.ListSituationReports(ctx, subProjectID)
}

// AddSituationReport stores a legacy statement row. These rows feed only
// the situation-report side of the latest-payment view, never the cached
// financials, so no propagation runs.
func (s *PortfolioService) AddSituationReport(ctx context.Context, p model.Principal, report *model.SituationReport) error {
	if _, _, err := s.authorizeSubProject(ctx, p, report.SubProjectID); err != nil {
		return err
	}
	if report.ReportType != "temporary" && report.ReportType != "permanent" {
		return fmt.Errorf("%w: unknown report type %q", ErrValidation, report.ReportType)
	}
	if report.ReportNumber < 1 {
		return fmt.Errorf("%w: report number must be positive", ErrValidation)
	}
	if report.PaymentAmount.IsNegative() {
		return fmt.Errorf("%w: payment amount cannot be negative", ErrValidation)
	}
	return s.documents.CreateSituationReport(ctx, report)
}

// --- batch recomputation ---

// RecomputeAllSchedules rebuilds every project's subproject schedules. The
// nightly batch runs it to re-seed floating subprojects from today.
func (s *PortfolioService) RecomputeAllSchedules(ctx context.Context) error {
	return s.recomputeAll(ctx, "schedules")
}

// RecomputeAllFinancialCaches rebuilds every project's financial caches.
func (s *PortfolioService) RecomputeAllFinancialCaches(ctx context.Context) error {
	return s.recomputeAll(ctx, "financial caches")
}

// RecomputeAllProgramOpeningDates refreshes every program's opening date
// and progress.
func (s *PortfolioService) RecomputeAllProgramOpeningDates(ctx context.Context) error {
	programs, err := s.programs.List(ctx, nil)
	if err != nil {
		return err
	}
	for i := range programs {
		programID := programs[i].ID
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.refreshProgram(ctx, tx, programID)
		})
		if err != nil {
			return fmt.Errorf("program %s: %w", programs[i].ProgramID, err)
		}
	}
	s.log.Info().Int("programs", len(programs)).Msg("program opening dates recomputed")
	return nil
}

func (s *PortfolioService) recomputeAll(ctx context.Context, what string) error {
	projects, err := s.projects.List(ctx, nil)
	if err != nil {
		return err
	}
	for i := range projects {
		projectID := projects[i].ID
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.propagate(ctx, tx, projectID)
		})
		if err != nil {
			return fmt.Errorf("project %s: %w", projects[i].ProjectID, err)
		}
	}
	s.log.Info().Int("projects", len(projects)).Str("pass", what).Msg("recompute finished")
	return nil
}

// --- helpers ---

func (s *PortfolioService) authorizeSubProject(ctx context.Context, p model.Principal, subProjectID uuid.UUID) (*model.SubProject, *model.Project, error) {
	sub, err := s.subProjects.Get(ctx, subProjectID)
	if err != nil {
		return nil, nil, notFound(err)
	}
	project, err := s.projects.Get(ctx, sub.ProjectID)
	if err != nil {
		return nil, nil, notFound(err)
	}
	if !p.CanModify(sub.CreatedByID, project.Province) {
		return nil, nil, ErrPermissionDenied
	}
	return sub, project, nil
}

func (s *PortfolioService) recordDiffs(ctx context.Context, tx *gorm.DB, kind model.EntityKind, entityID, userID uuid.UUID, diffs []FieldDiff) error {
	if len(diffs) == 0 {
		return nil
	}
	entries := make([]model.ChangeEntry, 0, len(diffs))
	for _, diff := range diffs {
		entries = append(entries, model.ChangeEntry{
			EntityKind:  kind,
			EntityID:    entityID,
			FieldName:   diff.Field,
			OldValue:    diff.Old,
			NewValue:    diff.New,
			ChangedByID: userID,
		})
	}
	return s.history.WithTx(tx).RecordChanges(ctx, entries)
}

func (s *PortfolioService) validateDocument(ctx context.Context, doc *model.FinancialDocument, sub *model.SubProject) error {
	if !doc.DocumentType.Valid() {
		return fmt.Errorf("%w: unknown document type %q", ErrValidation, doc.DocumentType)
	}
	if doc.ContractorAmount.IsNegative() || doc.ApprovedAmount.IsNegative() {
		return fmt.Errorf("%w: amounts must be non-negative", ErrValidation)
	}
	if doc.DocumentType == model.DocumentTypeAdjustmentReport {
		if doc.RelatedDocumentID == nil {
			return fmt.Errorf("%w: adjustment reports must reference a document", ErrValidation)
		}
		related, err := s.documents.Get(ctx, *doc.RelatedDocumentID)
		if err != nil {
			return notFound(err)
		}
		if related.SubProjectID != sub.ID {
			return fmt.Errorf("%w: related document belongs to another subproject", ErrValidation)
		}
	}
	return nil
}

func (s *PortfolioService) validatePayment(ctx context.Context, payment *model.Payment) error {
	if !payment.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	if payment.RelatedDocumentID != nil {
		related, err := s.documents.Get(ctx, *payment.RelatedDocumentID)
		if err != nil {
			return notFound(err)
		}
		if related.SubProjectID != payment.SubProjectID {
			return fmt.Errorf("%w: related document belongs to another subproject", ErrValidation)
		}
	}
	return nil
}

func validateProgram(program *model.Program) error {
	if program.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !program.ProgramType.Valid() {
		return fmt.Errorf("%w: unknown program type %q", ErrValidation, program.ProgramType)
	}
	if !program.Province.Valid() {
		return fmt.Errorf("%w: unknown province %q", ErrValidation, program.Province)
	}
	if !program.LicenseState.Valid() {
		return fmt.Errorf("%w: unknown license state %q", ErrValidation, program.LicenseState)
	}
	return nil
}

func validateProject(project *model.Project) error {
	if project.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !project.ProjectType.Valid() {
		return fmt.Errorf("%w: unknown project type %q", ErrValidation, project.ProjectType)
	}
	if project.ProgramID == nil && !project.Province.Valid() {
		return fmt.Errorf("%w: unknown province %q", ErrValidation, project.Province)
	}
	pools := []struct {
		name   string
		amount interface{ IsNegative() bool }
	}{
		{"cash_national", project.Allocations.CashNational},
		{"cash_province", project.Allocations.CashProvince},
		{"cash_charity", project.Allocations.CashCharity},
		{"cash_travel", project.Allocations.CashTravel},
		{"treasury_national", project.Allocations.TreasuryNational},
		{"treasury_province", project.Allocations.TreasuryProvince},
		{"treasury_travel", project.Allocations.TreasuryTravel},
	}
	for _, pool := range pools {
		if pool.amount.IsNegative() {
			return fmt.Errorf("%w: %s must be non-negative", ErrValidation, pool.name)
		}
	}
	return nil
}

func validateSubProject(sub *model.SubProject, siblings []model.SubProject) error {
	if !sub.Type.Valid() {
		return fmt.Errorf("%w: unknown subproject type %q", ErrValidation, sub.Type)
	}
	if !sub.State.Valid() {
		return fmt.Errorf("%w: unknown subproject state %q", ErrValidation, sub.State)
	}
	if sub.PhysicalProgress.IsNegative() || sub.PhysicalProgress.GreaterThan(hundred) {
		return fmt.Errorf("%w: physical progress must be within [0,100]", ErrValidation)
	}

	// The contract block is all-or-nothing.
	anyContract := sub.ContractStartDate != nil || sub.ContractEndDate != nil ||
		sub.ContractAmount != nil || sub.ContractType != nil || sub.ExecutionMethod != nil
	if anyContract && !sub.HasContract() {
		return fmt.Errorf("%w: incomplete contract block", ErrValidation)
	}
	if sub.HasContract() {
		if sub.ContractEndDate.Before(*sub.ContractStartDate) {
			return fmt.Errorf("%w: contract end precedes start", ErrValidation)
		}
		if sub.ContractType != nil && !sub.ContractType.Valid() {
			return fmt.Errorf("%w: unknown contract type %q", ErrValidation, *sub.ContractType)
		}
		if sub.ExecutionMethod != nil && !sub.ExecutionMethod.Valid() {
			return fmt.Errorf("%w: unknown execution method %q", ErrValidation, *sub.ExecutionMethod)
		}
	}

	if sub.HasAdjustment {
		if sub.AdjustmentCoefficient.IsNegative() || sub.AdjustmentCoefficient.GreaterThan(model.MaxAdjustmentPercent) {
			return fmt.Errorf("%w: adjustment coefficient must be within [0,%s]", ErrValidation, model.MaxAdjustmentPercent)
		}
	}
	if sub.ImaginaryDuration != nil && *sub.ImaginaryDuration <= 0 {
		return fmt.Errorf("%w: imaginary duration must be positive", ErrValidation)
	}
	if sub.ImaginaryCost != nil && sub.ImaginaryCost.IsNegative() {
		return fmt.Errorf("%w: imaginary cost must be non-negative", ErrValidation)
	}
	if sub.RelationshipType != nil && !sub.RelationshipType.Valid() {
		return fmt.Errorf("%w: unknown relationship type %q", ErrValidation, *sub.RelationshipType)
	}
	return ValidateRelation(sub, siblings)
}
