package config_test

import (
	"os"
	"time"

	"github.com/61040-fa22/rec5/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setenv := func(key, value string) {
		old, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	unsetenv := func(key string) {
		old, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, old)
			}
		})
	}

	BeforeEach(func() {
		for _, key := range []string{"API_PORT", "SESSION_COOKIE", "SESSION_TTL", "LOG_LEVEL"} {
			unsetenv(key)
		}
		setenv("SESSION_SECRET", "6170")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the secret is set", func() {
		It("should fall back to defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app).To(Equal(config.App{
				Port:          "3000",
				SessionSecret: "6170",
				SessionCookie: "sid",
				SessionTTL:    24 * time.Hour,
				LogLevel:      zapcore.InfoLevel,
			}))
		})
	})

	When("everything is set", func() {
		BeforeEach(func() {
			setenv("API_PORT", "8080")
			setenv("SESSION_COOKIE", "session")
			setenv("SESSION_TTL", "90m")
			setenv("LOG_LEVEL", "debug")
		})

		It("should use the environment", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.SessionCookie).To(Equal("session"))
			Expect(app.SessionTTL).To(Equal(90 * time.Minute))
			Expect(app.LogLevel).To(Equal(zapcore.DebugLevel))
		})
	})

	When("the secret is missing", func() {
		BeforeEach(func() {
			unsetenv("SESSION_SECRET")
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})

	When("the ttl is not a duration", func() {
		BeforeEach(func() {
			setenv("SESSION_TTL", "a day")
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_TTL")))
		})
	})

	When("the log level is unknown", func() {
		BeforeEach(func() {
			setenv("LOG_LEVEL", "loud")
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("LOG_LEVEL")))
		})
	})
})
