package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// JournalService persists and lists free-text journal entries.
type JournalService struct {
	store store.Store
}

func NewJournalService(s store.Store) *JournalService {
	return &JournalService{store: s}
}

func (s *JournalService) AddEntry(ctx context.Context, userID, entry string) (*model.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if strings.TrimSpace(entry) == "" {
		return nil, fmt.Errorf("%w: entry is required", model.ErrValidation)
	}
	return s.store.Journal().Append(ctx, &model.JournalEntry{UserID: userID, Entry: entry})
}

func (s *JournalService) ListEntries(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.store.Journal().ListByUser(ctx, userID, time.Time{})
}
