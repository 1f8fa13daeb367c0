package session_test

import (
	"time"

	"github.com/61040-fa22/rec5/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryStore", func() {
	var (
		store *session.MemoryStore
		now   time.Time
	)

	BeforeEach(func() {
		store = session.NewMemoryStore()
		now = time.Date(2022, time.September, 20, 10, 0, 0, 0, time.UTC)
	})

	It("should return a saved session", func() {
		s := session.Session{ID: "a", UserID: "0", ExpiresAt: now.Add(time.Minute)}
		store.Save(s)

		got, ok := store.Get("a", now)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(s))
	})

	It("should hide expired sessions", func() {
		store.Save(session.Session{ID: "a", ExpiresAt: now})

		_, ok := store.Get("a", now)
		Expect(ok).To(BeFalse())
	})

	It("should forget deleted sessions", func() {
		store.Save(session.Session{ID: "a", ExpiresAt: now.Add(time.Minute)})
		store.Delete("a")

		_, ok := store.Get("a", now)
		Expect(ok).To(BeFalse())
		Expect(store.Len()).To(Equal(0))
	})

	Describe("Purge", func() {
		It("should drop only expired sessions", func() {
			store.Save(session.Session{ID: "old", ExpiresAt: now.Add(-time.Minute)})
			store.Save(session.Session{ID: "new", ExpiresAt: now.Add(time.Minute)})

			Expect(store.Purge(now)).To(Equal(1))
			Expect(store.Len()).To(Equal(1))

			_, ok := store.Get("new", now)
			Expect(ok).To(BeTrue())
		})
	})
})
