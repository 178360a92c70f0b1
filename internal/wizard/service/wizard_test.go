package service

//go:generate mockgen -destination=mocks/store-mocks.go -package=mocks nocflow/internal/wizard/store/draft Store
//go:generate mockgen -destination=mocks/submit-mocks.go -package=mocks nocflow/internal/wizard/submit Submitter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"nocflow/internal/audit"
	"nocflow/internal/wizard/models"
	"nocflow/internal/wizard/registry"
	"nocflow/internal/wizard/service/mocks"
	"nocflow/internal/wizard/store/draft"
	"nocflow/internal/wizard/submit"
	dErrors "nocflow/pkg/domain-errors"
)

const applicantID = "applicant-42"

type WizardSuite struct {
	suite.Suite
	ctx context.Context
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(WizardSuite))
}

func (s *WizardSuite) SetupSuite() {
	s.ctx = context.Background()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newService builds a service over a real in-memory draft store and a mocked
// submitter.
func (s *WizardSuite) newService() (*Service, *mocks.MockSubmitter, *draft.InMemory) {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	submitter := mocks.NewMockSubmitter(ctrl)
	store := draft.NewInMemory()
	svc := New(store, submitter, discardLogger())
	return svc, submitter, store
}

func (s *WizardSuite) fillSection(w *Wizard, section models.Section) {
	for _, f := range section.Fields {
		if !f.Required {
			continue
		}
		if f.IsFile() {
			s.Require().NoError(w.UpdateField(section.ID, f.Key, models.AttachmentValue(&models.Attachment{
				Name:     f.Key + ".pdf",
				MIMEType: "application/pdf",
				Content:  []byte("content-of-" + f.Key),
			})))
			continue
		}
		s.Require().NoError(w.UpdateField(section.ID, f.Key, models.TextValue("v-"+f.Key)))
	}
}

func (s *WizardSuite) fillAll(w *Wizard) {
	for _, section := range registry.Sections() {
		s.fillSection(w, section)
	}
}

// completeThrough runs Save & Continue over every section except the last,
// leaving the wizard positioned for submission.
func (s *WizardSuite) completeThrough(w *Wizard) {
	s.fillAll(w)
	for !registry.IsLast(w.Snapshot().Active) {
		result, err := w.SaveAndContinue(s.ctx)
		s.Require().NoError(err)
		s.Require().Empty(result.FieldErrors)
		s.Require().True(result.Advanced)
	}
}

func drainEvents(svc *Service) []audit.Event {
	var out []audit.Event
	for {
		select {
		case e := <-svc.Events():
			out = append(out, e)
		default:
			return out
		}
	}
}

func actions(events []audit.Event) []audit.Action {
	out := make([]audit.Action, 0, len(events))
	for _, e := range events {
		out = append(out, e.Action)
	}
	return out
}

func (s *WizardSuite) TestNewWizardStartsAtFirstSection() {
	svc, _, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	snap := w.Snapshot()
	s.Equal(registry.First(), snap.Active)
	s.Empty(snap.Completed)
	s.False(snap.Submitting)

	s.Run("same applicant gets the same wizard", func() {
		s.Same(w, svc.Wizard(s.ctx, applicantID))
	})
	s.Run("different applicants are isolated", func() {
		s.NotSame(w, svc.Wizard(s.ctx, "someone-else"))
	})
}

func (s *WizardSuite) TestUpdateField() {
	svc, _, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	s.Run("stores a text value", func() {
		s.Require().NoError(w.UpdateField(registry.SectionProjectInformation, "title", models.TextValue("River Song")))
		s.Equal("River Song", w.Snapshot().Data[registry.SectionProjectInformation]["title"].Text)
	})

	s.Run("clearing removes the entry", func() {
		s.Require().NoError(w.UpdateField(registry.SectionProjectInformation, "title", models.FieldValue{}))
		_, ok := w.Snapshot().Data[registry.SectionProjectInformation]["title"]
		s.False(ok)
	})

	s.Run("unknown section", func() {
		err := w.UpdateField("nope", "title", models.TextValue("x"))
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})

	s.Run("unknown field", func() {
		err := w.UpdateField(registry.SectionProjectInformation, "nope", models.TextValue("x"))
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})

	s.Run("text into a file field", func() {
		err := w.UpdateField(registry.SectionDeclaration, "signature", models.TextValue("sig.png"))
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("attachment into a text field", func() {
		err := w.UpdateField(registry.SectionProjectInformation, "title",
			models.AttachmentValue(&models.Attachment{Name: "t.pdf", Content: []byte("x")}))
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func (s *WizardSuite) TestSaveAndContinueBlocksOnValidation() {
	svc, _, store := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	result, err := w.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(result.FieldErrors)
	s.False(result.Advanced)
	s.Equal(registry.First(), result.Active)
	s.Equal("title", result.FieldErrors[0].Key)

	snap := w.Snapshot()
	s.Equal(registry.First(), snap.Active, "wizard must stay put")
	s.False(snap.Completed[registry.First()])

	n := w.Notification()
	s.Require().NotNil(n)
	s.Equal(models.NotificationWarning, n.Kind)
	s.Contains(n.Message, "Title")

	_, loadErr := store.LoadSection(s.ctx, applicantID, registry.First())
	s.Error(loadErr, "nothing persists on a blocked transition")
}

func (s *WizardSuite) TestSaveAndContinueAdvances() {
	svc, _, store := s.newService()
	w := svc.Wizard(s.ctx, applicantID)
	first, _ := registry.Get(registry.First())
	s.fillSection(w, first)

	result, err := w.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.Empty(result.FieldErrors)
	s.True(result.Advanced)
	s.Equal(registry.SectionProductionHouse, result.Active)

	snap := w.Snapshot()
	s.Equal(registry.SectionProductionHouse, snap.Active)
	s.True(snap.Completed[registry.First()])

	loaded, loadErr := store.LoadSection(s.ctx, applicantID, registry.First())
	s.Require().NoError(loadErr)
	s.Equal("v-title", loaded["title"].Text)

	got := actions(drainEvents(svc))
	s.Contains(got, audit.ActionDraftSaved)
	s.Contains(got, audit.ActionSectionCompleted)
}

func (s *WizardSuite) TestDraftFailureDoesNotBlockNavigation() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	store := mocks.NewMockStore(ctrl)
	submitter := mocks.NewMockSubmitter(ctrl)
	svc := New(store, submitter, discardLogger())

	store.EXPECT().LoadSection(gomock.Any(), applicantID, gomock.Any()).
		Return(nil, errors.New("store down")).Times(len(registry.Sections()))
	store.EXPECT().SaveSection(gomock.Any(), applicantID, registry.First(), gomock.Any()).
		Return(errors.New("store down"))

	w := svc.Wizard(s.ctx, applicantID)
	first, _ := registry.Get(registry.First())
	s.fillSection(w, first)

	result, err := w.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.True(result.Advanced, "draft persistence is best-effort")
	s.True(w.Snapshot().Completed[registry.First()])
}

func (s *WizardSuite) TestGoBack() {
	svc, _, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	s.Run("no-op at the first section", func() {
		w.GoBack()
		s.Equal(registry.First(), w.Snapshot().Active)
	})

	s.Run("moves back without validation", func() {
		s.Require().NoError(w.JumpTo(registry.SectionTechnical))
		w.GoBack()
		s.Equal(registry.SectionCreativeCast, w.Snapshot().Active)
	})
}

func (s *WizardSuite) TestJumpToBypassesValidation() {
	svc, _, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	// Nothing is filled in; a direct jump to the end is still allowed.
	s.Require().NoError(w.JumpTo(registry.Last()))
	s.Equal(registry.Last(), w.Snapshot().Active)
	s.Empty(w.Snapshot().Completed)

	err := w.JumpTo("no-such-section")
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *WizardSuite) TestJumpToEndCannotSubmitHollowApplication() {
	svc, _, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)

	s.Require().NoError(w.JumpTo(registry.Last()))
	last, _ := registry.Get(registry.Last())
	s.fillSection(w, last)

	_, err := w.SaveAndContinue(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeInvariantViolation))

	n := w.Notification()
	s.Require().NotNil(n)
	s.Equal(models.NotificationWarning, n.Kind)
	s.Equal("Application incomplete", n.Title)

	snap := w.Snapshot()
	s.Equal(registry.Last(), snap.Active, "state is preserved")
	s.False(snap.Submitting)
}

func (s *WizardSuite) TestSubmissionSuccessResetsWizard() {
	svc, submitter, store := s.newService()
	w := svc.Wizard(s.ctx, applicantID)
	s.completeThrough(w)

	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(submit.Result{
		Outcome: submit.OutcomeSuccess,
		Message: "accepted",
		Receipt: &submit.Receipt{ApplicationID: "NOC-2026-0042", Status: "PENDING"},
	}, nil)

	result, err := w.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.True(result.Submitted)
	s.Equal(submit.OutcomeSuccess, result.Outcome)
	s.Equal(registry.First(), result.Active)

	snap := w.Snapshot()
	s.Equal(registry.First(), snap.Active)
	s.Empty(snap.Data)
	s.Empty(snap.Completed)
	s.False(snap.Submitting)

	_, loadErr := store.LoadSection(s.ctx, applicantID, registry.First())
	s.Error(loadErr, "drafts are cleared on success")

	n := w.Notification()
	s.Require().NotNil(n)
	s.Equal(models.NotificationSuccess, n.Kind)
	s.Contains(n.Message, "NOC-2026-0042")
	s.Equal(8*time.Second, n.AutoClose)

	got := actions(drainEvents(svc))
	s.Contains(got, audit.ActionSubmissionAttempted)
	s.Contains(got, audit.ActionSubmissionSucceeded)
	s.Contains(got, audit.ActionWizardReset)
}

func (s *WizardSuite) TestSubmissionFailuresPreserveState() {
	cases := []struct {
		name      string
		result    submit.Result
		wantTitle string
	}{
		{
			name:      "session expired",
			result:    submit.Result{Outcome: submit.OutcomeSessionExpired, Message: "session expired, please log in again"},
			wantTitle: "Session expired",
		},
		{
			name:      "rejected",
			result:    submit.Result{Outcome: submit.OutcomeRejected, Message: "shoot dates overlap an existing permit"},
			wantTitle: "Application rejected",
		},
		{
			name:      "failed",
			result:    submit.Result{Outcome: submit.OutcomeFailed, Message: "submission failed, please try again"},
			wantTitle: "Submission failed",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			svc, submitter, store := s.newService()
			w := svc.Wizard(s.ctx, applicantID)
			s.completeThrough(w)

			submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tc.result, nil)

			result, err := w.SaveAndContinue(s.ctx)
			s.Require().NoError(err)
			s.True(result.Submitted)
			s.Equal(tc.result.Outcome, result.Outcome)

			snap := w.Snapshot()
			s.Equal(registry.Last(), snap.Active, "state survives a failed submission")
			s.NotEmpty(snap.Data)
			s.False(snap.Submitting)

			_, loadErr := store.LoadSection(s.ctx, applicantID, registry.First())
			s.NoError(loadErr, "drafts survive a failed submission")

			n := w.Notification()
			s.Require().NotNil(n)
			s.Equal(models.NotificationError, n.Kind)
			s.Equal(tc.wantTitle, n.Title)
			s.Equal(tc.result.Message, n.Message)
		})
	}
}

func (s *WizardSuite) TestTransportFailureSurfacesUnavailable() {
	svc, submitter, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)
	s.completeThrough(w)

	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(submit.Result{}, errors.New("connection refused"))

	_, err := w.SaveAndContinue(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeUnavailable))

	snap := w.Snapshot()
	s.Equal(registry.Last(), snap.Active)
	s.False(snap.Submitting, "the guard flag is released for a retry")

	n := w.Notification()
	s.Require().NotNil(n)
	s.Equal(models.NotificationError, n.Kind)
	s.Equal("Submission failed", n.Title)
}

func (s *WizardSuite) TestConcurrentSubmitIsRejected() {
	svc, submitter, _ := s.newService()
	w := svc.Wizard(s.ctx, applicantID)
	s.completeThrough(w)

	release := make(chan struct{})
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any) (submit.Result, error) {
			<-release
			return submit.Result{Outcome: submit.OutcomeSuccess, Receipt: &submit.Receipt{ApplicationID: "NOC-1"}}, nil
		})

	firstDone := make(chan ContinueResult, 1)
	go func() {
		result, err := w.SaveAndContinue(s.ctx)
		s.NoError(err)
		firstDone <- result
	}()

	s.Require().Eventually(func() bool { return w.Snapshot().Submitting },
		time.Second, time.Millisecond, "first submission should be in flight")

	_, err := w.SaveAndContinue(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeConflict))

	close(release)
	result := <-firstDone
	s.True(result.Submitted)
	s.Equal(submit.OutcomeSuccess, result.Outcome)
}

func (s *WizardSuite) TestHydrationRestoresDrafts() {
	store := draft.NewInMemory()

	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	submitter := mocks.NewMockSubmitter(ctrl)

	// First process: fill two sections and save the first via the wizard.
	svcA := New(store, submitter, discardLogger())
	wA := svcA.Wizard(s.ctx, applicantID)
	first, _ := registry.Get(registry.First())
	s.fillSection(wA, first)
	result, err := wA.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.Require().True(result.Advanced)
	second, _ := registry.Get(registry.SectionProductionHouse)
	s.fillSection(wA, second)
	result, err = wA.SaveAndContinue(s.ctx)
	s.Require().NoError(err)
	s.Require().True(result.Advanced)

	// Second process over the same store: drafts come back, progress does not.
	svcB := New(store, submitter, discardLogger())
	wB := svcB.Wizard(s.ctx, applicantID)

	snap := wB.Snapshot()
	s.Equal(registry.First(), snap.Active, "hydration does not restore position")
	s.Empty(snap.Completed, "hydration does not restore completion")
	s.Equal("v-title", snap.Data[registry.First()]["title"].Text)

	att := snap.Data[registry.SectionProductionHouse]["registrationCertificate"].Attachment
	s.Require().NotNil(att)
	s.True(att.MetadataOnly, "attachment binaries do not survive a reload")
	s.False(att.HasContent())
}
