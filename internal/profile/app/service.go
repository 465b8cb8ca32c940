package app

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dwikikusuma/freshcart/internal/i18n"
	"github.com/dwikikusuma/freshcart/internal/profile/domain"
	"github.com/dwikikusuma/freshcart/internal/state"
)

var ErrInvalidInput = errors.New("invalid input")

// Service reads and edits the profile of the session held by the store in
// ctx.
type Service struct {
	tr *i18n.Translator
}

// NewService builds a Service. A nil translator echoes keys back.
func NewService(tr *i18n.Translator) *Service {
	return &Service{tr: tr}
}

func (s *Service) GetUser(ctx context.Context) domain.User {
	return state.Use(ctx).User()
}

// UpdateUser merges patch into the current user. An empty patch is a no-op.
func (s *Service) UpdateUser(ctx context.Context, patch domain.UserPatch) (domain.User, error) {
	if err := validatePatch(patch); err != nil {
		return domain.User{}, err
	}

	store := state.Use(ctx)
	if !patch.Empty() {
		store.UpdateUser(patch)
	}
	return store.User(), nil
}

func (s *Service) SetLanguage(ctx context.Context, lang string) (domain.User, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" || !i18n.Valid(lang) {
		return domain.User{}, fmt.Errorf("%w: language %q", ErrInvalidInput, lang)
	}

	store := state.Use(ctx)
	store.SetLanguage(lang)
	return store.User(), nil
}

// Translate looks key up in lang, or in the user's language when lang is
// empty. It returns the text and the language it was resolved in.
func (s *Service) Translate(ctx context.Context, key, lang string) (text, resolved string, err error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if lang == "" {
		lang = state.Use(ctx).User().Language
	}
	if s.tr == nil {
		return key, lang, nil
	}

	tag, _ := s.tr.Match(lang)
	return s.tr.T(lang, key), tag.String(), nil
}

func validatePatch(p domain.UserPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*p.Email)); err != nil {
			return fmt.Errorf("%w: email: %v", ErrInvalidInput, err)
		}
	}
	if p.Orders != nil && *p.Orders < 0 {
		return fmt.Errorf("%w: orders must not be negative", ErrInvalidInput)
	}
	if p.Addresses != nil && *p.Addresses < 0 {
		return fmt.Errorf("%w: addresses must not be negative", ErrInvalidInput)
	}
	if p.Language != nil && !i18n.Valid(*p.Language) {
		return fmt.Errorf("%w: language %q", ErrInvalidInput, *p.Language)
	}
	return nil
}
