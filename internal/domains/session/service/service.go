package service

import (
	"context"
	"fmt"
	"strconv"
	"summitbooking/infras/bolt"
	"summitbooking/infras/otel"
	"summitbooking/internal/domains/session/model/dto"
	"summitbooking/shared/constant"

	"github.com/rs/zerolog/log"
)

// Session persists the logged-in clerk identity and the first-launch flag
// across restarts. Only the login flow writes it; everything else reads.
type Session interface {
	Save(ctx context.Context, session dto.Session) error
	Clear(ctx context.Context) error
	Current(ctx context.Context) (dto.Session, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	IsFirstTimeLaunch(ctx context.Context) (bool, error)
	SetFirstTimeLaunch(ctx context.Context, firstTime bool) error
}

type serviceImpl struct {
	store *bolt.Store
	otel  otel.Otel
}

func New(store *bolt.Store, otel otel.Otel) Session {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Save(ctx context.Context, session dto.Session) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries := map[string]string{
		constant.SessionKeyUserID:     strconv.FormatInt(session.UserID, 10),
		constant.SessionKeyUserName:   session.UserName,
		constant.SessionKeyUserEmail:  session.UserEmail,
		constant.SessionKeyUserRole:   session.UserRole,
		constant.SessionKeyIsLoggedIn: "true",
	}

	for key, value := range entries {
		if err = s.store.Put(key, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save session key")

			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Current(ctx context.Context) (res dto.Session, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	rawID, _, err := s.store.Get(constant.SessionKeyUserID)
	if err != nil {
		return res, fmt.Errorf("failed to read session: %w", err)
	}

	if rawID != "" {
		res.UserID, _ = strconv.ParseInt(rawID, 10, 64)
	}

	if res.UserName, _, err = s.store.Get(constant.SessionKeyUserName); err != nil {
		return res, fmt.Errorf("failed to read session: %w", err)
	}

	if res.UserEmail, _, err = s.store.Get(constant.SessionKeyUserEmail); err != nil {
		return res, fmt.Errorf("failed to read session: %w", err)
	}

	role, found, err := s.store.Get(constant.SessionKeyUserRole)
	if err != nil {
		return res, fmt.Errorf("failed to read session: %w", err)
	}

	if !found {
		role = constant.RoleClerk
	}

	res.UserRole = role

	return res, nil
}

func (s *serviceImpl) IsLoggedIn(ctx context.Context) (res bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".IsLoggedIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, _, err := s.store.Get(constant.SessionKeyIsLoggedIn)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}

	return value == "true", nil
}

// IsFirstTimeLaunch defaults to true until the flag is explicitly cleared.
func (s *serviceImpl) IsFirstTimeLaunch(ctx context.Context) (res bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".IsFirstTimeLaunch")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, found, err := s.store.Get(constant.SessionKeyFirstTime)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}

	if !found {
		return true, nil
	}

	return value == "true", nil
}

func (s *serviceImpl) SetFirstTimeLaunch(ctx context.Context, firstTime bool) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SetFirstTimeLaunch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.store.Put(constant.SessionKeyFirstTime, strconv.FormatBool(firstTime)); err != nil {
		log.Error().Err(err).Msg("failed to set first launch flag")

		return fmt.Errorf("failed to set first launch flag: %w", err)
	}

	return nil
}
