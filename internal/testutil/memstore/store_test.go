package memstore

import (
	"context"
	"errors"
	"testing"

	"tradex-backend/internal/domain/loan"
	"tradex-backend/internal/domain/payment"
	"tradex-backend/internal/domain/uow"

	"gorm.io/gorm"
)

func TestLoanRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	r := s.Repos()

	l := &loan.Loan{LoanID: "abc", Customer: "maria", Principal: 100, Status: loan.StatusActive}
	if err := r.Loans.Create(ctx, l); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("auto ID not assigned")
	}

	got, err := r.Loans.GetByLoanID(ctx, "abc")
	if err != nil {
		t.Fatalf("GetByLoanID err: %v", err)
	}
	// returned value is a copy; mutating it must not leak into the store
	got.Collected = 999
	back, _ := r.Loans.GetByLoanID(ctx, "abc")
	if back.Collected != 0 {
		t.Fatalf("copy leaked into store: Collected = %v", back.Collected)
	}

	got.Collected = 50
	if err := r.Loans.Save(ctx, got); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	back, _ = r.Loans.GetByLoanID(ctx, "abc")
	if back.Collected != 50 {
		t.Fatalf("Save not applied: Collected = %v", back.Collected)
	}

	if _, err := r.Loans.GetByLoanID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing loan err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestPaymentRepo_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	s := New()
	r := s.Repos()

	for _, pid := range []string{"p1", "p2", "p3"} {
		if err := r.Payments.Create(ctx, &payment.Payment{PaymentID: pid, LoanID: "l1", Amount: 10}); err != nil {
			t.Fatalf("Create %s err: %v", pid, err)
		}
	}
	p2, err := r.Payments.GetByPaymentID(ctx, "p2")
	if err != nil {
		t.Fatalf("GetByPaymentID err: %v", err)
	}
	if err := r.Payments.Delete(ctx, p2); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	left, err := r.Payments.ListByLoanID(ctx, "l1")
	if err != nil {
		t.Fatalf("ListByLoanID err: %v", err)
	}
	if len(left) != 2 || left[0].PaymentID != "p1" || left[1].PaymentID != "p3" {
		t.Fatalf("remaining payments = %+v, want p1,p3", left)
	}
}

func TestWithinLoanTx_UnknownLoan(t *testing.T) {
	s := New()
	err := s.WithinLoanTx(context.Background(), "nope", func(r uow.Repos, l *loan.Loan) error {
		t.Fatal("fn must not run for unknown loan")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
