package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "tradex-backend/internal/adapter/http"
	mw "tradex-backend/internal/adapter/middleware"
	"tradex-backend/internal/adapter/repository/mysql"
	"tradex-backend/internal/config"
	capitalDomain "tradex-backend/internal/domain/capital"
	loanDomain "tradex-backend/internal/domain/loan"
	paymentDomain "tradex-backend/internal/domain/payment"
	"tradex-backend/internal/infrastructure/cache"
	"tradex-backend/internal/infrastructure/db"
	capitaluc "tradex-backend/internal/usecase/capital"
	loanuc "tradex-backend/internal/usecase/loan"
	reportuc "tradex-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}, &paymentDomain.Payment{}, &capitalDomain.Contribution{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	contribs := mysql.NewContributionRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loans, uow)
	capitalUC := capitaluc.NewUsecase(contribs, loans)
	reportUC := reportuc.NewUsecase(loans, payments, contribs)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanUC)
	ph := httpadp.NewPaymentHandler(loanUC)
	ch := httpadp.NewCapitalHandler(capitalUC)
	rh := httpadp.NewReportHandler(reportUC)
	eh := httpadp.NewExportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := mw.PINAuth(cfg.AdminPIN, cfg.OperatorPIN)
	adminOnly := mw.RequireRole(mw.RoleAdmin)
	anyRole := mw.RequireRole(mw.RoleAdmin, mw.RoleOperator)
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.POST("/loans", lh.CreateLoan, auth, adminOnly, idemp)
	e.GET("/loans", lh.ListLoans, auth, anyRole)
	e.GET("/loans/:loan_id", lh.GetLoan, auth, anyRole)

	e.POST("/payments", ph.RecordPayment, auth, anyRole, idemp)
	e.PATCH("/payments/:payment_id/date", ph.EditPaymentDate, auth, adminOnly)
	e.DELETE("/payments/:payment_id", ph.DeletePayment, auth, adminOnly)

	e.POST("/contributions", ch.Contribute, auth, adminOnly, idemp)
	e.GET("/contributions", ch.ListContributions, auth, adminOnly)
	e.GET("/capital", ch.GetSnapshot, auth, anyRole)

	e.GET("/dashboard", rh.Dashboard, auth, anyRole)
	e.GET("/export", eh.Export, auth, adminOnly)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
