package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbiblio/biblio/internal/pkg/clock"
	"github.com/openbiblio/biblio/internal/pkg/config"
	"github.com/openbiblio/biblio/internal/pkg/goroutine"
	"github.com/openbiblio/biblio/internal/pkg/hash"
	"github.com/openbiblio/biblio/internal/pkg/idempotency"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/jwt"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
	"github.com/openbiblio/biblio/internal/pkg/otp"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/router"
	"github.com/openbiblio/biblio/internal/pkg/storage"
	"github.com/openbiblio/biblio/internal/pkg/uid"
	"github.com/openbiblio/biblio/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine    *goroutine.Manager
	validator    validator.Validator
	clock        clock.Clocker
	bcrypt       hash.Hash
	uid          uid.NumberID
	uuid         uid.StringID
	totp         otp.OTP
	jwt          jwt.JWT
	mfaEncryptor mfa.Encryptor
	qr           qrcode.Encoder

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	storage   storage.Blob

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initStorage()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
