package ledger

import (
	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

type MovementView interface {
	AccountID(id uint) MovementView
	Kind(kind atmcore.MovementKind) MovementView
	Limit(n int) MovementView
	Count(c *int64) MovementView
	Find(dest *[]*atmcore.Movement) MovementView
	Err() error
}

type movementViewImpl struct {
	query *gorm.DB
	err   error
}

// AccountID implements MovementView.
func (m *movementViewImpl) AccountID(id uint) MovementView {
	if id == 0 {
		return m
	}

	m.query = m.
		query.
		Where("account_id = ?", id)
	return m
}

// Kind implements MovementView.
func (m *movementViewImpl) Kind(kind atmcore.MovementKind) MovementView {
	if kind == "" {
		return m
	}

	m.query = m.
		query.
		Where("kind = ?", kind)
	return m
}

// Limit implements MovementView.
func (m *movementViewImpl) Limit(n int) MovementView {
	if n <= 0 {
		return m
	}

	m.query = m.query.Limit(n)
	return m
}

// Count implements MovementView.
func (m *movementViewImpl) Count(c *int64) MovementView {
	err := m.query.Count(c).Error
	return m.setErr(err)
}

// Find implements MovementView.
func (m *movementViewImpl) Find(dest *[]*atmcore.Movement) MovementView {
	err := m.
		query.
		Order("entry_time asc, id asc").
		Find(dest).
		Error

	return m.setErr(err)
}

// Err implements MovementView.
func (m *movementViewImpl) Err() error {
	return m.err
}

func (m *movementViewImpl) setErr(err error) *movementViewImpl {
	if m.err != nil {
		return m
	}

	if err != nil {
		m.err = err
	}

	return m
}

func NewMovementView(db *gorm.DB) MovementView {
	return &movementViewImpl{
		query: db.Model(&atmcore.Movement{}),
	}
}
