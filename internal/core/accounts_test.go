package core_test

import (
	"context"
	"time"

	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/core/fake"
	"github.com/61040-fa22/rec5/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Accounts", func() {
	var (
		fakeStore  *fake.UserStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		accounts   *core.Accounts
		alice      repository.User
		view       repository.UserView
		err        error
	)

	BeforeEach(func() {
		fakeStore = new(fake.UserStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		accounts = core.NewAccounts(fakeLogger, fakeStore)

		alice = repository.User{
			ID:         "0",
			Username:   "alice",
			Password:   "pw1",
			DateJoined: time.Date(2022, time.September, 20, 10, 0, 0, 0, time.UTC),
		}
	})

	Describe("CreateUser", func() {
		BeforeEach(func() {
			fakeStore.AddOneReturns(alice)
		})

		JustBeforeEach(func() {
			view, err = accounts.CreateUser(ctx, core.Credentials{Username: "alice", Password: "pw1"})
		})

		It("should add the user and return its view", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view).To(Equal(repository.ConstructUserResponse(alice)))

			Expect(fakeStore.AddOneCallCount()).To(Equal(1))
			username, password := fakeStore.AddOneArgsForCall(0)
			Expect(username).To(Equal("alice"))
			Expect(password).To(Equal("pw1"))
		})
	})

	Describe("SignIn", func() {
		var creds core.Credentials

		BeforeEach(func() {
			creds = core.Credentials{Username: "alice", Password: "pw1"}
		})

		JustBeforeEach(func() {
			view, err = accounts.SignIn(ctx, creds)
		})

		When("the credentials match", func() {
			BeforeEach(func() {
				fakeStore.FindOneByUsernameReturns(alice, true)
			})

			It("should return the user view", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ID).To(Equal("0"))
				Expect(fakeStore.FindOneByUsernameArgsForCall(0)).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStore.FindOneByUsernameReturns(repository.User{}, false)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(view).To(BeZero())
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeStore.FindOneByUsernameReturns(alice, true)
				creds.Password = "wrong"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})
	})

	Describe("GetAuthor", func() {
		When("the author exists", func() {
			BeforeEach(func() {
				fakeStore.FindOneByUsernameReturns(alice, true)
			})

			It("should return the author view", func() {
				view, err = accounts.GetAuthor(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Name).To(Equal("alice"))
			})
		})

		When("the author does not exist", func() {
			It("should return user not found error", func() {
				_, err = accounts.GetAuthor(ctx, "nobody")
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			userID string
			update repository.UserUpdate
		)

		BeforeEach(func() {
			userID = "0"
			name := "alicia"
			update = repository.UserUpdate{Username: &name}
		})

		JustBeforeEach(func() {
			view, err = accounts.UpdateUser(ctx, userID, update)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				updated := alice
				updated.Username = "alicia"
				fakeStore.UpdateOneReturns(updated, true)
			})

			It("should return the updated view", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Name).To(Equal("alicia"))

				Expect(fakeStore.UpdateOneCallCount()).To(Equal(1))
				argID, argUpdate := fakeStore.UpdateOneArgsForCall(0)
				Expect(argID).To(Equal("0"))
				Expect(argUpdate).To(Equal(update))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeStore.UpdateOneReturns(repository.User{}, false)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("nobody is signed in", func() {
			BeforeEach(func() {
				userID = ""
			})

			It("should return unauthorized without touching the store", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeStore.UpdateOneCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteUser", func() {
		var userID string

		BeforeEach(func() {
			userID = "0"
		})

		JustBeforeEach(func() {
			view, err = accounts.DeleteUser(ctx, userID)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStore.DeleteOneReturns(alice, true)
			})

			It("should delete by id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ID).To(Equal("0"))
				Expect(fakeStore.DeleteOneArgsForCall(0)).To(Equal("0"))
			})
		})

		When("the user is gone", func() {
			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("nobody is signed in", func() {
			BeforeEach(func() {
				userID = ""
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeStore.DeleteOneCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UserExists", func() {
		It("should follow the store lookup", func() {
			fakeStore.FindOneByUserIDReturnsOnCall(0, alice, true)
			fakeStore.FindOneByUserIDReturnsOnCall(1, repository.User{}, false)

			Expect(accounts.UserExists(ctx, "0")).To(BeTrue())
			Expect(accounts.UserExists(ctx, "1")).To(BeFalse())
		})
	})

	Describe("with the in-memory store", func() {
		It("should never mix up users across create, update and delete", func() {
			accounts = core.NewAccounts(fakeLogger, repository.NewUserStore())

			a, err := accounts.CreateUser(ctx, core.Credentials{Username: "alice", Password: "pw1"})
			Expect(err).NotTo(HaveOccurred())
			b, err := accounts.CreateUser(ctx, core.Credentials{Username: "bob", Password: "pw2"})
			Expect(err).NotTo(HaveOccurred())

			_, err = accounts.DeleteUser(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())

			found, err := accounts.SignIn(ctx, core.Credentials{Username: "bob", Password: "pw2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(b.ID))

			Expect(accounts.UserExists(ctx, a.ID)).To(BeFalse())
			Expect(accounts.UserExists(ctx, b.ID)).To(BeTrue())
		})
	})
})
