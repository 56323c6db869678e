package app

import (
	"log/slog"
	"os"

	"github.com/openbiblio/biblio/internal/catalog"
	"github.com/openbiblio/biblio/internal/identity"
	"github.com/openbiblio/biblio/internal/settings"
)

func (a *App) initModules() {
	if err := identity.New(identity.Dependency{
		DBConn:       a.dbConn,
		Router:       a.router,
		Instrument:   a.ins,
		UID:          a.uid,
		Bcrypt:       a.bcrypt,
		MFAEncryptor: a.mfaEncryptor,
		Clock:        a.clock,
		Totp:         a.totp,
		QR:           a.qr,
		Validator:    a.validator,
		JWT:          a.jwt,
	}); err != nil {
		slog.Error("failed to init module identity", "error", err)
		os.Exit(1)
	}

	if err := catalog.New(catalog.Dependency{
		DBConn:      a.dbConn,
		Router:      a.router,
		Config:      a.config,
		Instrument:  a.ins,
		Goroutine:   a.goroutine,
		Idempotency: a.idemp,
		Blob:        a.storage,
		UID:         a.uid,
		QR:          a.qr,
		Clock:       a.clock,
		Validator:   a.validator,
	}); err != nil {
		slog.Error("failed to init module catalog", "error", err)
		os.Exit(1)
	}

	if err := settings.New(settings.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Instrument: a.ins,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module settings", "error", err)
		os.Exit(1)
	}
}
