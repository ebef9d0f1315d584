package integration_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/harborline/boat-tour-booking/internal/app"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/harborline/boat-tour-booking/internal/mailer"
	"github.com/harborline/boat-tour-booking/internal/payment"
	"github.com/harborline/boat-tour-booking/internal/repository"
	appvalidator "github.com/harborline/boat-tour-booking/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	Mailer          *mailer.MockMailer
	PaymentProvider *payment.MockPaymentProvider
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	missionRepo := repository.NewPostgresMissionRepository(db)
	tripRepo := repository.NewPostgresTripRepository(db)
	boatRepo := repository.NewPostgresBoatRepository(db)
	merchandiseRepo := repository.NewPostgresMerchandiseRepository(db)
	discountRepo := repository.NewPostgresDiscountCodeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)
	adminUserRepo := repository.NewPostgresAdminUserRepository(db)

	paymentProvider := payment.NewMockPaymentProvider()

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		missionRepo,
		tripRepo,
		boatRepo,
		merchandiseRepo,
		discountRepo,
		bookingRepo,
		adminUserRepo,
		paymentProvider,
	)

	return &TestApp{
		App:             application,
		DB:              db,
		Mailer:          mailer,
		PaymentProvider: paymentProvider,
	}, nil
}

// insertTestAdmin seeds the default admin account. The password hash has to be
// generated in Go, bcrypt is not available inside the database.
func (a *TestApp) insertTestAdmin(t testing.TB) {
	admin := &domain.AdminUser{Name: TestAdminName, Email: TestAdminEmail, Active: true}
	require.NoError(t, admin.Password.Set(TestAdminPassword))

	_, err := a.DB.Exec(context.Background(), `
		INSERT INTO admin_users (name, email, password_hash, active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO NOTHING`,
		admin.Name, admin.Email, admin.Password.Hash)
	require.NoError(t, err)
}

// adminLoginCookies logs the default admin in and returns the session cookies
// to attach to subsequent requests.
func (a *TestApp) adminLoginCookies(t testing.TB) []http.Cookie {
	a.insertTestAdmin(t)

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, TestAdminEmail, TestAdminPassword)

	req := httptest.NewRequest("POST", "/admin/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)

	cookies := make([]http.Cookie, 0, len(res.Cookies()))
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}
	require.NotEmpty(t, cookies)

	return cookies
}
