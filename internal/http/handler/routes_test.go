package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/http/handler"
	"github.com/61040-fa22/rec5/internal/http/handler/middleware"
	"github.com/61040-fa22/rec5/internal/http/payload"
	"github.com/61040-fa22/rec5/internal/http/web"
	"github.com/61040-fa22/rec5/internal/repository"
	"github.com/61040-fa22/rec5/internal/session"
	tokenIssuer "github.com/61040-fa22/rec5/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Routes", func() {
	var (
		srv    *httptest.Server
		client *http.Client
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()

		accounts := core.NewAccounts(logger, repository.NewUserStore())
		sessions := session.NewManager(logger,
			session.NewMemoryStore(),
			tokenIssuer.NewJWTService([]byte("6170")),
			"sid",
			time.Hour)

		templates, err := web.Templates()
		Expect(err).NotTo(HaveOccurred())

		sm := middleware.NewSessionMiddleware(logger, sessions, accounts)
		mux := handler.Routes(
			handler.NewAccountHandler(logger, payload.Decoder{}, accounts, sessions),
			handler.NewPageHandler(logger, templates, "Accounts"),
			web.Static("/static/"),
			sm)

		srv = httptest.NewServer(sm.Sessions(mux))

		jar, err := cookiejar.New(nil)
		Expect(err).NotTo(HaveOccurred())
		client = &http.Client{Jar: jar}
	})

	AfterEach(func() {
		srv.Close()
	})

	do := func(c *http.Client, method, path, body string) (int, string) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, err := http.NewRequest(method, srv.URL+path, reader)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp.StatusCode, string(raw)
	}

	It("should serve the home page and assets", func() {
		code, body := do(client, http.MethodGet, "/", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("<title>Accounts</title>"))

		code, body = do(client, http.MethodGet, "/static/scripts/services.js", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("formsAndHandlers"))
	})

	It("should answer unknown routes with the error page", func() {
		code, body := do(client, http.MethodGet, "/nope", "")
		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(body).To(ContainSubstring("/nope"))
	})

	It("should run an account through its whole lifecycle", func() {
		code, body := do(client, http.MethodPost, "/api/users", `{"username":"alice","password":"pw1"}`)
		Expect(code).To(Equal(http.StatusCreated))
		Expect(body).NotTo(ContainSubstring("pw1"))

		var created handler.Response
		Expect(json.Unmarshal([]byte(body), &created)).To(Succeed())
		Expect(created.User.ID).To(Equal("0"))

		code, _ = do(client, http.MethodPut, "/api/users", `{"username":"alicia"}`)
		Expect(code).To(Equal(http.StatusOK))

		code, body = do(client, http.MethodGet, "/api/users/alicia", "")
		Expect(code).To(Equal(http.StatusOK))
		var author handler.AuthorResponse
		Expect(json.Unmarshal([]byte(body), &author)).To(Succeed())
		Expect(author.Author.ID).To(Equal("0"))

		code, body = do(client, http.MethodDelete, "/api/session", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("You have been logged out successfully."))

		code, _ = do(client, http.MethodPut, "/api/users", `{"password":"pw2"}`)
		Expect(code).To(Equal(http.StatusUnauthorized))

		code, _ = do(client, http.MethodPost, "/api/session", `{"username":"alicia","password":"wrong"}`)
		Expect(code).To(Equal(http.StatusBadRequest))

		code, _ = do(client, http.MethodPost, "/api/session", `{"username":"alicia","password":"pw1"}`)
		Expect(code).To(Equal(http.StatusCreated))

		code, _ = do(client, http.MethodDelete, "/api/users", "")
		Expect(code).To(Equal(http.StatusOK))

		code, _ = do(client, http.MethodGet, "/api/users/alicia", "")
		Expect(code).To(Equal(http.StatusNotFound))

		code, _ = do(client, http.MethodDelete, "/api/users", "")
		Expect(code).To(Equal(http.StatusUnauthorized))
	})

	When("the session user was deleted by another client", func() {
		var stale *http.Client

		BeforeEach(func() {
			code, _ := do(client, http.MethodPost, "/api/users", `{"username":"bob","password":"pw"}`)
			Expect(code).To(Equal(http.StatusCreated))

			jar, err := cookiejar.New(nil)
			Expect(err).NotTo(HaveOccurred())
			stale = &http.Client{Jar: jar}
			code, _ = do(stale, http.MethodPost, "/api/session", `{"username":"bob","password":"pw"}`)
			Expect(code).To(Equal(http.StatusCreated))

			code, _ = do(client, http.MethodDelete, "/api/users", "")
			Expect(code).To(Equal(http.StatusOK))
		})

		It("should still sign out", func() {
			code, body := do(stale, http.MethodDelete, "/api/session", "")
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(Equal("You have been logged out successfully."))
		})

		It("should still create an account and sign into it", func() {
			code, body := do(stale, http.MethodPost, "/api/users", `{"username":"carol","password":"pw"}`)
			Expect(code).To(Equal(http.StatusCreated))
			var created handler.Response
			Expect(json.Unmarshal([]byte(body), &created)).To(Succeed())
			Expect(created.User.ID).To(Equal("1"))

			code, body = do(stale, http.MethodPut, "/api/users", `{"username":"caroline"}`)
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring("caroline"))
		})

		It("should still serve pages", func() {
			code, body := do(stale, http.MethodGet, "/", "")
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring("<title>Accounts</title>"))

			code, _ = do(stale, http.MethodGet, "/api/users/bob", "")
			Expect(code).To(Equal(http.StatusNotFound))
		})

		It("should refuse account changes once and then treat the client as signed out", func() {
			code, body := do(stale, http.MethodPut, "/api/users", `{"password":"pw2"}`)
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(ContainSubstring("This user no longer exists"))

			code, body = do(stale, http.MethodPut, "/api/users", `{"password":"pw2"}`)
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(ContainSubstring("you must be signed in"))
		})

		It("should refuse sign in on the stale session", func() {
			code, body := do(stale, http.MethodPost, "/api/session", `{"username":"bob","password":"pw"}`)
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(ContainSubstring("This user no longer exists"))
		})
	})

	It("should reject a missing author with 400", func() {
		code, _ := do(client, http.MethodGet, "/api/users", "")
		Expect(code).To(Equal(http.StatusBadRequest))
	})
})
