package question

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestBuildLayoutReport(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	items := []LayoutItem{
		{QuestionID: q1},
		{QuestionID: q2},
		{QuestionID: q3},
	}

	var applied []uuid.UUID
	report := buildLayoutReport(items, func(item LayoutItem) error {
		applied = append(applied, item.QuestionID)
		if item.QuestionID == q2 {
			return ErrQuestionNotFound
		}
		return nil
	})

	// A broken item never stops the batch
	if len(applied) != 3 {
		t.Fatalf("expected all 3 items attempted, got %d", len(applied))
	}

	if report.Saved != 2 || report.Failed != 1 {
		t.Errorf("Saved/Failed = %d/%d, want 2/1", report.Saved, report.Failed)
	}
	if len(report.Items) != 3 {
		t.Fatalf("expected 3 item results, got %d", len(report.Items))
	}

	if !report.Items[0].OK || report.Items[0].QuestionID != q1 {
		t.Errorf("first item should have saved: %+v", report.Items[0])
	}
	if report.Items[1].OK || report.Items[1].Error != ErrQuestionNotFound.Error() {
		t.Errorf("second item should carry the failure: %+v", report.Items[1])
	}
	if !report.Items[2].OK || report.Items[2].QuestionID != q3 {
		t.Errorf("item after the failure should still have saved: %+v", report.Items[2])
	}
}

func TestBuildLayoutReportEmpty(t *testing.T) {
	report := buildLayoutReport(nil, func(LayoutItem) error {
		return errors.New("must not be called")
	})
	if report.Saved != 0 || report.Failed != 0 || len(report.Items) != 0 {
		t.Errorf("empty batch should produce an empty report: %+v", report)
	}
}
