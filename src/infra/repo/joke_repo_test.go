package repo_test

import (
	"context"
	"os"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jokeapi/src/core/domain"
	"jokeapi/src/infra/config"
	"jokeapi/src/infra/db"
	"jokeapi/src/infra/logger"
	"jokeapi/src/infra/repo"
	"jokeapi/src/testutil/comparer"
	"jokeapi/src/testutil/stubs"
)

// testDatabaseConfig reads TEST_DB_* and reports whether a database is available.
func testDatabaseConfig() (config.DatabaseConfig, bool) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		return config.DatabaseConfig{}, false
	}
	port, err := strconv.Atoi(os.Getenv("TEST_DB_PORT"))
	if err != nil {
		port = 5432
	}
	return config.DatabaseConfig{
		Host:         host,
		Port:         port,
		User:         os.Getenv("TEST_DB_USER"),
		Password:     os.Getenv("TEST_DB_PASSWORD"),
		Name:         os.Getenv("TEST_DB_NAME"),
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 1,
	}, true
}

var _ = Describe("JokeRepository", func() {
	var (
		ctx      context.Context
		pg       *db.Postgres
		jokeRepo *repo.JokeRepository
	)

	BeforeEach(func() {
		cfg, ok := testDatabaseConfig()
		if !ok {
			Skip("TEST_DB_HOST not set")
		}
		ctx = context.Background()
		log := logger.Discard()

		var err error
		pg, err = db.New(ctx, cfg, log)
		Expect(err).NotTo(HaveOccurred())

		migrator := db.NewMigrator(pg, log)
		_, err = migrator.Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(migrator.Close()).To(Succeed())

		_, err = pg.Pool.Exec(ctx, "TRUNCATE TABLE jokes RESTART IDENTITY")
		Expect(err).NotTo(HaveOccurred())

		jokeRepo = repo.NewJokeRepository(pg, log)
	})

	AfterEach(func() {
		if pg != nil {
			pg.Close()
		}
	})

	Context("empty table", func() {
		It("counts zero and lists nothing", func() {
			n, err := jokeRepo.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			all, err := jokeRepo.FindAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("returns not found for any id", func() {
			_, err := jokeRepo.FindByID(ctx, 999)
			Expect(err).To(MatchError(domain.ErrNotFound))

			Expect(jokeRepo.Delete(ctx, 999)).To(MatchError(domain.ErrNotFound))
		})
	})

	Context("after inserting jokes", func() {
		var inserted []domain.Joke

		BeforeEach(func() {
			inserted = nil
			for _, s := range stubs.Many(3) {
				j, err := jokeRepo.Create(ctx, s.Question, s.Answer)
				Expect(err).NotTo(HaveOccurred())
				Expect(j).To(BeComparableTo(&s, comparer.JokeContent()))
				inserted = append(inserted, *j)
			}
		})

		It("assigns serial ids starting at one", func() {
			Expect(inserted[0].ID).To(Equal(int64(1)))
			Expect(inserted[2].ID).To(Equal(int64(3)))
			Expect(inserted[0].CreatedAt).NotTo(BeZero())
		})

		It("lists every joke ordered by id", func() {
			all, err := jokeRepo.FindAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeComparableTo(inserted, comparer.JokeIgnoringTimestamps()))
		})

		It("fetches a single row by offset", func() {
			page, err := jokeRepo.FindWithOffsetLimit(ctx, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(1))
			Expect(page[0].ID).To(Equal(inserted[1].ID))

			page, err = jokeRepo.FindWithOffsetLimit(ctx, 3, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(BeEmpty())
		})

		It("deletes permanently", func() {
			Expect(jokeRepo.Delete(ctx, inserted[0].ID)).To(Succeed())

			_, err := jokeRepo.FindByID(ctx, inserted[0].ID)
			Expect(err).To(MatchError(domain.ErrNotFound))

			n, err := jokeRepo.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})
	})

	It("stores fields up to the column limit, counted in characters", func() {
		want := stubs.NewJokeStub().
			WithID(1).
			WithQuestion(strings.Repeat("é", domain.MaxJokeFieldLength)).
			WithAnswer("L'amsterdam").
			Get()

		created, err := jokeRepo.Create(ctx, want.Question, want.Answer)
		Expect(err).NotTo(HaveOccurred())

		got, err := jokeRepo.FindByID(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeComparableTo(&want, comparer.JokeIgnoringTimestamps()))
	})

	It("reports healthy while connected", func() {
		Expect(jokeRepo.Health(ctx)).To(Succeed())
	})
})
