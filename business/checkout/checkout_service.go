package checkout

import (
	"context"
	"courseHub/domain"
	"courseHub/pkg/metrics"
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrAmountTooSmall = errors.New("amount below minimum charge")

const (
	confirmationSubject = "Payment Confirmation"
	confirmationBody    = `<h3>Dear,</h3> <p>Thank you for your Payment. Your courses have been successfully enrolled.</p> <p>Transaction ID: %v.</p> <p>Best regards,</p> <p>Course Hub Team</p>`
)

type EnrolledStudentRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.EnrolledStudent, error)
	Create(ctx context.Context, student *domain.EnrolledStudent) error
}

type CartRepository interface {
	DeleteByIDs(ctx context.Context, ids []uint) error
}

type PaymentHistoryRepository interface {
	Create(ctx context.Context, history *domain.PaymentHistory) error
}

type EnrollmentRepository interface {
	CreateBatch(ctx context.Context, enrollments []domain.Enrollment) error
}

type NotificationRepository interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, body string) error
}

type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type Service struct {
	enrolledStudentRepo EnrolledStudentRepository
	cartRepo            CartRepository
	paymentHistoryRepo  PaymentHistoryRepository
	enrollmentRepo      EnrollmentRepository
	notifRepo           NotificationRepository
	processor           PaymentProcessor
}

func NewService(
	enrolledStudentRepo EnrolledStudentRepository,
	cartRepo CartRepository,
	paymentHistoryRepo PaymentHistoryRepository,
	enrollmentRepo EnrollmentRepository,
	notifRepo NotificationRepository,
	processor PaymentProcessor,
) *Service {
	return &Service{
		enrolledStudentRepo: enrolledStudentRepo,
		cartRepo:            cartRepo,
		paymentHistoryRepo:  paymentHistoryRepo,
		enrollmentRepo:      enrollmentRepo,
		notifRepo:           notifRepo,
		processor:           processor,
	}
}

type CheckoutInput struct {
	Email         string
	TransactionID string
	Date          time.Time
	Price         float64
	Status        string
	CourseIDs     []uint
	CartIDs       []uint
}

type CheckoutResult struct {
	PaymentHistoryID uint   `json:"paymentHistoryId"`
	Enrollments      []uint `json:"enrollmentIds"`
}

// Pay runs the checkout as a plain sequence of writes. The steps are not
// atomic and carry no idempotency key: a failure midway leaves the earlier
// writes committed, and a concurrent double submission can enroll twice.
func (s *Service) Pay(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	result, err := s.pay(ctx, input)
	if err != nil {
		metrics.CheckoutFailures.Inc()
		return CheckoutResult{}, err
	}

	metrics.CheckoutTotal.Inc()
	return result, nil
}

func (s *Service) pay(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	// First-ever purchase gets an enrolled-student marker.
	_, err := s.enrolledStudentRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrNotFound) {
		err = s.enrolledStudentRepo.Create(ctx, &domain.EnrolledStudent{
			Email: input.Email,
			Date:  time.Now(),
		})
	}
	if err != nil {
		return CheckoutResult{}, err
	}

	// Purge the purchased cart rows. Best-effort: nothing rolls this back if
	// a later step fails.
	if len(input.CartIDs) > 0 {
		if err := s.cartRepo.DeleteByIDs(ctx, input.CartIDs); err != nil {
			return CheckoutResult{}, err
		}
	}

	purchaseDate := input.Date
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	history := domain.PaymentHistory{
		Email:         input.Email,
		TransactionID: input.TransactionID,
		Date:          purchaseDate,
		Price:         input.Price,
		Status:        input.Status,
	}
	for _, courseID := range input.CourseIDs {
		history.Items = append(history.Items, domain.PaymentHistoryItem{CourseID: courseID})
	}

	if err := s.paymentHistoryRepo.Create(ctx, &history); err != nil {
		return CheckoutResult{}, err
	}

	enrollments := make([]domain.Enrollment, 0, len(input.CourseIDs))
	for _, courseID := range input.CourseIDs {
		enrollments = append(enrollments, domain.Enrollment{
			UserEmail:     input.Email,
			CourseID:      courseID,
			TransactionID: input.TransactionID,
			PurchaseDate:  purchaseDate,
			Status:        domain.EnrollmentStatusActive,
		})
	}

	if err := s.enrollmentRepo.CreateBatch(ctx, enrollments); err != nil {
		return CheckoutResult{}, err
	}

	message := fmt.Sprintf(confirmationBody, input.TransactionID)
	if err := s.notifRepo.SendEmail(ctx, "", input.Email, confirmationSubject, message); err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{PaymentHistoryID: history.ID}
	for _, enrollment := range enrollments {
		result.Enrollments = append(result.Enrollments, enrollment.ID)
	}

	return result, nil
}

// CreatePaymentIntent converts the price to minor units and asks the
// processor for a client secret. Amounts below one minor unit are rejected
// before any processor call.
func (s *Service) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount < 1 {
		return "", ErrAmountTooSmall
	}

	metrics.PaymentIntentRequests.Inc()

	return s.processor.CreatePaymentIntent(ctx, amount)
}
