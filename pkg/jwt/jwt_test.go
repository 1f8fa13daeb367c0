package jwt_test

import (
	"time"

	tokenIssuer "github.com/61040-fa22/rec5/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		now     time.Time
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		now = time.Date(2022, time.September, 20, 10, 0, 0, 0, time.UTC)
		tokenIssuer.TimeNow = func() time.Time { return now }
		service = tokenIssuer.NewJWTService([]byte("6170"))
		info = tokenIssuer.TokenInfo{
			Subject:   "session-1",
			ExpiresAt: now.Add(time.Hour),
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("should carry subject and expiry as claims", func() {
			token := service.Generate(info)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			claims := token.Claims.(jwt.MapClaims)
			Expect(claims["sub"]).To(Equal("session-1"))
			Expect(claims["exp"]).To(Equal(info.ExpiresAt.Unix()))
			Expect(claims["iat"]).To(Equal(now.Unix()))
		})
	})

	Describe("Validate", func() {
		var (
			token   string
			subject string
			err     error
		)

		BeforeEach(func() {
			var issueErr error
			token, issueErr = service.Issue(info)
			Expect(issueErr).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			subject, err = service.Validate(token)
		})

		When("the token is intact", func() {
			It("should return the subject", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(subject).To(Equal("session-1"))
			})
		})

		When("the token was signed with another secret", func() {
			BeforeEach(func() {
				var issueErr error
				token, issueErr = tokenIssuer.NewJWTService([]byte("other")).Issue(info)
				Expect(issueErr).NotTo(HaveOccurred())
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(subject).To(BeEmpty())
			})
		})

		When("the token is garbage", func() {
			BeforeEach(func() {
				token = "not-a-token"
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				now = now.Add(2 * time.Hour)
			})

			It("should report expiry", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				var issueErr error
				token, issueErr = service.Issue(tokenIssuer.TokenInfo{ExpiresAt: now.Add(time.Hour)})
				Expect(issueErr).NotTo(HaveOccurred())
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
