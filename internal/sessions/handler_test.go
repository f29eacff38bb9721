package sessions_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"LearnVerse/internal/errs"
	"LearnVerse/internal/sessions"
	"LearnVerse/internal/testutil"
)

var _ = Describe("SessionHandler", func() {
	var (
		e        *echo.Echo
		repo     *fakeStore
		h        *sessions.SessionHandler
		existing sessions.Session
	)

	BeforeEach(func() {
		e = echo.New()
		existing = sessions.Session{
			ID:              primitive.NewObjectID(),
			TutorEmail:      "alan@learnverse.io",
			Title:           "Computability",
			Status:          sessions.StatusReject,
			RejectionReason: "missing outline",
			Feedback:        "please add weekly topics",
			RegistrationFee: 20,
		}
		repo = newFakeStore(existing, sessions.Session{
			ID:         primitive.NewObjectID(),
			TutorEmail: "ada@learnverse.io",
			Title:      "Analytical Engines",
			Status:     sessions.StatusPending,
		})
		h = sessions.NewSessionHandler(repo, zap.NewNop())
	})

	Describe("Create", func() {
		Specify("stores the session as pending for the caller", func() {
			c, rec := testutil.Context(e, http.MethodPost, "/sessions",
				`{"title":"Logic","status":"approve","rejection_reason":"x","registration_fee":10}`)
			testutil.AsUser(c, "kurt@learnverse.io")

			Expect(h.Create(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			var res struct {
				InsertedID primitive.ObjectID `json:"insertedId"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &res)).To(Succeed())
			stored := repo.docs[res.InsertedID]
			Expect(stored).NotTo(BeNil())
			Expect(stored.Status).To(Equal(sessions.StatusPending))
			Expect(stored.TutorEmail).To(Equal("kurt@learnverse.io"))
			Expect(stored.RejectionReason).To(BeEmpty())
		})
	})

	Describe("ListByTutor", func() {
		Specify("filters by tutor email", func() {
			c, rec := testutil.Context(e, http.MethodGet, "/sessions/ada@learnverse.io", "", "email", "ada@learnverse.io")
			Expect(h.ListByTutor(c)).To(Succeed())

			var res []sessions.Session
			Expect(json.Unmarshal(rec.Body.Bytes(), &res)).To(Succeed())
			Expect(res).To(HaveLen(1))
			Expect(res[0].Title).To(Equal("Analytical Engines"))
		})
	})

	Describe("Approve", func() {
		Specify("sets the fee and approves", func() {
			c, rec := testutil.Context(e, http.MethodPatch, "/sessions/"+existing.ID.Hex(), `{"regAmount":50}`, "id", existing.ID.Hex())
			Expect(h.Approve(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			stored := repo.docs[existing.ID]
			Expect(stored.RegistrationFee).To(BeEquivalentTo(50))
			Expect(stored.Status).To(Equal(sessions.StatusApprove))
		})

		Specify("requires regAmount", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/sessions/"+existing.ID.Hex(), `{}`, "id", existing.ID.Hex())
			Expect(h.Approve(c)).To(MatchError(errs.ErrInvalidRequest))
		})

		Specify("upserts an unknown id", func() {
			id := primitive.NewObjectID()
			c, rec := testutil.Context(e, http.MethodPatch, "/sessions/"+id.Hex(), `{"regAmount":5}`, "id", id.Hex())
			Expect(h.Approve(c)).To(Succeed())
			Expect(rec.Body.String()).To(ContainSubstring(`"upsertedCount":1`))
			Expect(repo.docs).To(HaveKey(id))
		})

		Specify("rejects malformed ids", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/sessions/nope", `{"regAmount":5}`, "id", "nope")
			Expect(h.Approve(c)).To(MatchError(errs.ErrInvalidID))
		})
	})

	Describe("Reject", func() {
		Specify("records reason and feedback without touching the fee", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/rejectSession/"+existing.ID.Hex(),
				`{"rejectionReason":"duplicate","feedback":"merge with Logic"}`, "id", existing.ID.Hex())
			Expect(h.Reject(c)).To(Succeed())

			stored := repo.docs[existing.ID]
			Expect(stored.Status).To(Equal(sessions.StatusReject))
			Expect(stored.RejectionReason).To(Equal("duplicate"))
			Expect(stored.Feedback).To(Equal("merge with Logic"))
			Expect(stored.RegistrationFee).To(BeEquivalentTo(20))
		})
	})

	Describe("Update", func() {
		Specify("merges supplied fields", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/updateSession/"+existing.ID.Hex(), `{"title":"Computability II"}`, "id", existing.ID.Hex())
			Expect(h.Update(c)).To(Succeed())
			Expect(repo.docs[existing.ID].Title).To(Equal("Computability II"))
			Expect(repo.docs[existing.ID].RegistrationFee).To(BeEquivalentTo(20))
		})

		Specify("refuses an empty body", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/updateSession/"+existing.ID.Hex(), `{}`, "id", existing.ID.Hex())
			Expect(h.Update(c)).To(MatchError(errs.ErrNothingToSet))
		})
	})

	Describe("UpdateStatus", func() {
		Specify("moves back to pending and clears rejection notes", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/sessionStatus/"+existing.ID.Hex(), `{"status":"pending"}`, "id", existing.ID.Hex())
			Expect(h.UpdateStatus(c)).To(Succeed())

			stored := repo.docs[existing.ID]
			Expect(stored.Status).To(Equal(sessions.StatusPending))
			Expect(stored.RejectionReason).To(BeEmpty())
			Expect(stored.Feedback).To(BeEmpty())
		})

		Specify("defaults to pending", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/sessionStatus/"+existing.ID.Hex(), `{}`, "id", existing.ID.Hex())
			Expect(h.UpdateStatus(c)).To(Succeed())
			Expect(repo.docs[existing.ID].Status).To(Equal(sessions.StatusPending))
		})

		Specify("rejects unknown statuses", func() {
			c, _ := testutil.Context(e, http.MethodPatch, "/sessionStatus/"+existing.ID.Hex(), `{"status":"archived"}`, "id", existing.ID.Hex())
			Expect(h.UpdateStatus(c)).To(MatchError(errs.ErrInvalidStatus))
		})
	})

	Describe("Delete", func() {
		Specify("reports one deletion", func() {
			c, rec := testutil.Context(e, http.MethodDelete, "/sessions/"+existing.ID.Hex(), "", "id", existing.ID.Hex())
			Expect(h.Delete(c)).To(Succeed())
			Expect(rec.Body.String()).To(MatchJSON(`{"acknowledged":true,"deletedCount":1}`))
		})

		Specify("a missing id deletes nothing and is not an error", func() {
			id := primitive.NewObjectID()
			c, rec := testutil.Context(e, http.MethodDelete, "/sessions/"+id.Hex(), "", "id", id.Hex())
			Expect(h.Delete(c)).To(Succeed())
			Expect(rec.Body.String()).To(MatchJSON(`{"acknowledged":true,"deletedCount":0}`))
		})
	})

	Specify("database failures propagate", func() {
		repo.err = fmt.Errorf("find sessions: %w", errs.ErrDatabase)
		c, _ := testutil.Context(e, http.MethodGet, "/sessions", "")
		Expect(h.List(c)).To(MatchError(errs.ErrDatabase))
	})
})
