package service

import (
	"context"

	"ticktock/export"
)

// ExportRows lists the user's weeks like List and pairs them with their entries.
func (s *Timesheets) ExportRows(ctx context.Context, userID uint, f Filter) ([]export.Row, error) {
	res, err := s.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	if len(res.Timesheets) == 0 {
		return nil, nil
	}
	entries, err := s.store.ListEntries(ctx, ids(res.Timesheets)...)
	if err != nil {
		return nil, err
	}
	return export.Rows(res, entries), nil
}
