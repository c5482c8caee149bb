package report

import (
	"context"
	"testing"
	"time"

	domainCapital "tradex-backend/internal/domain/capital"
	domainLoan "tradex-backend/internal/domain/loan"
	domainPayment "tradex-backend/internal/domain/payment"
	"tradex-backend/internal/testutil/memstore"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T) (*Usecase, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	ctx := context.Background()
	r := s.Repos()

	s.SeedContribution(domainCapital.Contribution{ContributionID: "c1", PartnerRef: "Hiriu", Amount: 3000, ContributedAt: date(2024, 1, 1)})

	// active, nothing collected
	if err := r.Loans.Create(ctx, &domainLoan.Loan{
		LoanID: "a", Customer: "maria", Principal: 1000, TotalDue: 1100,
		StartDate: date(2024, 1, 15), DueDate: date(2024, 3, 15), Status: domainLoan.StatusActive,
	}); err != nil {
		t.Fatalf("seed loan a: %v", err)
	}
	// stored as active but past due: Kpis must re-derive it to overdue
	if err := r.Loans.Create(ctx, &domainLoan.Loan{
		LoanID: "b", Customer: "jose", Principal: 500, TotalDue: 550, Collected: 200,
		StartDate: date(2024, 1, 1), DueDate: date(2024, 2, 1), Status: domainLoan.StatusActive,
	}); err != nil {
		t.Fatalf("seed loan b: %v", err)
	}
	// paid
	if err := r.Loans.Create(ctx, &domainLoan.Loan{
		LoanID: "c", Customer: "ana", Principal: 400, TotalDue: 440, Collected: 440,
		StartDate: date(2024, 1, 1), DueDate: date(2024, 2, 1), Status: domainLoan.StatusPaid,
	}); err != nil {
		t.Fatalf("seed loan c: %v", err)
	}

	for _, p := range []domainPayment.Payment{
		{PaymentID: "p1", LoanID: "b", Customer: "jose", Amount: 200, PaymentDate: date(2024, 2, 10)},
		{PaymentID: "p2", LoanID: "c", Customer: "ana", Amount: 440, PaymentDate: date(2024, 2, 15)},
	} {
		pp := p
		if err := r.Payments.Create(ctx, &pp); err != nil {
			t.Fatalf("seed payment %s: %v", p.PaymentID, err)
		}
	}

	return NewUsecase(r.Loans, r.Payments, r.Contributions), s
}

func TestKpis(t *testing.T) {
	uc, s := seed(t)
	today := date(2024, 2, 15)

	k, err := uc.Kpis(context.Background(), today)
	if err != nil {
		t.Fatalf("Kpis err: %v", err)
	}

	if k.TotalLoaned != 1500 {
		t.Fatalf("TotalLoaned = %v, want 1500 (active+overdue principal)", k.TotalLoaned)
	}
	if k.TotalCollected != 640 {
		t.Fatalf("TotalCollected = %v, want 640", k.TotalCollected)
	}
	if k.CollectedToday != 440 {
		t.Fatalf("CollectedToday = %v, want 440", k.CollectedToday)
	}
	// (1100-0) + (550-200) = 1450 still outstanding
	if k.ProjectedProfit != 1450 {
		t.Fatalf("ProjectedProfit = %v, want 1450", k.ProjectedProfit)
	}
	if k.AvailableCapital != 1500 {
		t.Fatalf("AvailableCapital = %v, want 1500 (3000 - 1500 out)", k.AvailableCapital)
	}
	if k.StatusCounts["active"] != 1 || k.StatusCounts["overdue"] != 1 || k.StatusCounts["paid"] != 1 {
		t.Fatalf("StatusCounts = %v, want 1/1/1", k.StatusCounts)
	}

	// the stale stored status was corrected and persisted
	for _, l := range s.Loans() {
		if l.LoanID == "b" && l.Status != domainLoan.StatusOverdue {
			t.Fatalf("loan b stored status = %v, want overdue after Kpis", l.Status)
		}
	}
}

func TestKpis_CollectedTodayFollowsEditedDate(t *testing.T) {
	uc, s := seed(t)
	ctx := context.Background()
	today := date(2024, 2, 15)

	// move p1 into today's bucket, as a retroactive date correction would
	r := s.Repos()
	p, err := r.Payments.GetByPaymentID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByPaymentID err: %v", err)
	}
	p.PaymentDate = today
	if err := r.Payments.Save(ctx, p); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	k, err := uc.Kpis(ctx, today)
	if err != nil {
		t.Fatalf("Kpis err: %v", err)
	}
	if k.CollectedToday != 640 {
		t.Fatalf("CollectedToday = %v, want 640 after date edit", k.CollectedToday)
	}
}

func TestExport_CompleteAndStable(t *testing.T) {
	uc, _ := seed(t)
	ctx := context.Background()
	today := date(2024, 2, 15)

	loans, payments, err := uc.Export(ctx, today)
	if err != nil {
		t.Fatalf("Export err: %v", err)
	}
	if len(loans) != 3 || len(payments) != 2 {
		t.Fatalf("export sizes = %d loans / %d payments, want 3/2", len(loans), len(payments))
	}

	again, _, err := uc.Export(ctx, today)
	if err != nil {
		t.Fatalf("second Export err: %v", err)
	}
	for i := range loans {
		if loans[i].LoanID != again[i].LoanID || loans[i].Status != again[i].Status {
			t.Fatalf("export not stable at %d: %v vs %v", i, loans[i], again[i])
		}
	}
}
