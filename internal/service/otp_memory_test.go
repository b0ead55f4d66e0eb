package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
)

// memoryOTPRepository keeps OTP rows in memory with the same selection
// rules as the PostgreSQL queries: the newest row wins and only unverified,
// unexpired rows are outstanding.
type memoryOTPRepository struct {
	mu     sync.Mutex
	rows   []models.OTPVerification
	nextID int64
}

var _ store.OTPRepository = (*memoryOTPRepository)(nil)

func (m *memoryOTPRepository) Create(_ context.Context, otp models.OTPVerification) (models.OTPVerification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	otp.ID = m.nextID
	m.rows = append(m.rows, otp)
	return otp, nil
}

func (m *memoryOTPRepository) FindLatestOutstanding(_ context.Context, email, code string, now time.Time) (models.OTPVerification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.latest(func(o models.OTPVerification) bool {
		return o.Email == email && o.OTPCode == code && !o.Verified && now.Before(o.ExpiresAt)
	}); i >= 0 {
		return m.rows[i], nil
	}
	return models.OTPVerification{}, store.ErrNotFound
}

func (m *memoryOTPRepository) IncrementAttemptsMatching(_ context.Context, email, code string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var affected int64
	for i := range m.rows {
		if m.rows[i].Email == email && m.rows[i].OTPCode == code {
			m.rows[i].Attempts++
			affected++
		}
	}
	return affected, nil
}

func (m *memoryOTPRepository) IncrementAttemptsOutstanding(_ context.Context, email string, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.latest(func(o models.OTPVerification) bool {
		return o.Email == email && !o.Verified && now.Before(o.ExpiresAt)
	})
	if i < 0 {
		return 0, nil
	}
	m.rows[i].Attempts++
	return 1, nil
}

func (m *memoryOTPRepository) MarkVerified(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].ID == id && !m.rows[i].Verified {
			m.rows[i].Verified = true
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memoryOTPRepository) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.rows[:0]
	for _, o := range m.rows {
		if !o.ExpiresAt.Before(cutoff) {
			kept = append(kept, o)
		}
	}
	removed := int64(len(m.rows) - len(kept))
	m.rows = kept
	return removed, nil
}

// latest returns the index of the newest row matching keep, or -1.
func (m *memoryOTPRepository) latest(keep func(models.OTPVerification) bool) int {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if keep(m.rows[i]) {
			return i
		}
	}
	return -1
}
