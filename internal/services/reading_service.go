package services

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arcana/internal/models/db_models"
	"arcana/internal/models/request_models"
	"arcana/internal/models/response_models"
	"arcana/internal/repositories"
	"arcana/pkg/utils"
)

// TxRunner is the slice of *gorm.DB the billed workflow needs: one atomic
// transaction around debit, insert, generate and complete.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type ReadingServiceInterface interface {
	// EnsureFunds fast-fails before any upload or mutation happens.
	EnsureFunds(ctx context.Context, accountID uuid.UUID) error

	Horoscope(ctx context.Context, accountID uuid.UUID, req request_models.HoroscopeRequest) (*response_models.ReadingResponse, error)
	Palm(ctx context.Context, accountID uuid.UUID, imagePath, fullPath string) (*response_models.ReadingResponse, error)
	Coffee(ctx context.Context, accountID uuid.UUID, imagePaths, fullPaths []string) (*response_models.ReadingResponse, error)

	History(ctx context.Context, accountID uuid.UUID) ([]db_models.Reading, error)
}

type ReadingService struct {
	db          TxRunner
	accountRepo repositories.AccountRepository
	readingRepo repositories.ReadingRepository
	generator   utils.ContentGeneratorInterface
	cost        decimal.Decimal
}

func NewReadingService(
	db TxRunner,
	accountRepo repositories.AccountRepository,
	readingRepo repositories.ReadingRepository,
	generator utils.ContentGeneratorInterface,
	cost decimal.Decimal,
) ReadingServiceInterface {
	return &ReadingService{
		db:          db,
		accountRepo: accountRepo,
		readingRepo: readingRepo,
		generator:   generator,
		cost:        cost,
	}
}

func (s *ReadingService) EnsureFunds(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if account.Balance.LessThan(s.cost) {
		return utils.ErrInsufficientFunds
	}
	return nil
}

func (s *ReadingService) Horoscope(ctx context.Context, accountID uuid.UUID, req request_models.HoroscopeRequest) (*response_models.ReadingResponse, error) {
	account, err := s.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.Balance.LessThan(s.cost) {
		return nil, utils.ErrInsufficientFunds
	}

	input := resolveHoroscopeInput(req, account)
	if input.DOB == "" {
		return nil, utils.ErrMissingBirthDate
	}

	return s.runBilled(ctx, accountID, db_models.ReadingTypeHoroscope, input, HoroscopePrompt(input), nil)
}

func (s *ReadingService) Palm(ctx context.Context, accountID uuid.UUID, imagePath, fullPath string) (*response_models.ReadingResponse, error) {
	input := db_models.PalmInput{ImagePath: imagePath}
	return s.runBilled(ctx, accountID, db_models.ReadingTypePalm, input, PalmPrompt(), []string{fullPath})
}

func (s *ReadingService) Coffee(ctx context.Context, accountID uuid.UUID, imagePaths, fullPaths []string) (*response_models.ReadingResponse, error) {
	input := db_models.CoffeeInput{ImagePaths: imagePaths}
	return s.runBilled(ctx, accountID, db_models.ReadingTypeCoffee, input, CoffeePrompt(), fullPaths)
}

func (s *ReadingService) History(ctx context.Context, accountID uuid.UUID) ([]db_models.Reading, error) {
	readings, err := s.readingRepo.ListCompletedByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return readings, nil
}

// runBilled performs the billed workflow as one atomic unit: re-read the
// account, debit the cost, insert a pending row, call the generator (still
// inside the transaction, so a failure rolls the debit back too) and mark
// the row completed. Generator API failures arrive as a stored fallback
// string, not as an error.
func (s *ReadingService) runBilled(
	ctx context.Context,
	accountID uuid.UUID,
	readingType db_models.ReadingType,
	input any,
	prompt string,
	imagePaths []string,
) (*response_models.ReadingResponse, error) {

	inputData, err := db_models.MarshalInput(input)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var reading *db_models.Reading
	var remaining decimal.Decimal

	err = s.db.Transaction(func(tx *gorm.DB) error {
		account, err := s.accountRepo.FindByIdTx(tx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		newBalance, err := DebitBalance(account.Balance, s.cost)
		if err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalanceTx(tx, accountID, newBalance); err != nil {
			return utils.ErrDatabaseError
		}

		reading = &db_models.Reading{
			AccountID: accountID,
			Type:      readingType,
			InputData: inputData,
			Status:    db_models.ReadingStatusPending,
		}
		if err := s.readingRepo.InsertTx(tx, reading); err != nil {
			return utils.ErrDatabaseError
		}

		result, err := s.generator.GenerateContent(ctx, prompt, imagePaths)
		if err != nil {
			log.Printf("Generator error, rolling back reading %s: %v", readingType, err)
			return err
		}

		if err := s.readingRepo.CompleteTx(tx, reading, result); err != nil {
			return utils.ErrDatabaseError
		}

		remaining = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response_models.ReadingResponse{
		Reading:          reading,
		RemainingBalance: remaining,
	}, nil
}

func resolveHoroscopeInput(req request_models.HoroscopeRequest, account *db_models.Account) db_models.HoroscopeInput {
	input := db_models.HoroscopeInput{
		Name:     req.Name,
		DOB:      req.DOB,
		Time:     req.Time,
		Location: req.Location,
		Period:   req.Period,
	}
	if input.Name == "" {
		input.Name = account.Name
	}
	if input.DOB == "" && account.BirthDate != nil {
		input.DOB = *account.BirthDate
	}
	if input.Time == "" {
		if account.BirthTime != nil {
			input.Time = *account.BirthTime
		} else {
			input.Time = "12:00"
		}
	}
	if input.Location == "" {
		if account.BirthLocation != nil {
			input.Location = *account.BirthLocation
		} else {
			input.Location = "Unknown City"
		}
	}
	if input.Period == "" {
		input.Period = "weekly"
	}
	return input
}
