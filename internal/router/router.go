package router

import (
	"net/http"
	"path/filepath"

	"petresq/internal/adapters/storage/jsonfile"
	mem "petresq/internal/adapters/storage/memory"
	"petresq/internal/domain/adoptions"
	"petresq/internal/domain/content"
	"petresq/internal/domain/pets"
	"petresq/internal/domain/stories"
	"petresq/internal/domain/submissions"
	"petresq/internal/platform/logger"
	"petresq/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// MemoryDataDir selects the in-memory repositories instead of the JSON
// files. Everything starts empty and vanishes on restart; useful for
// demos and quick local runs.
const MemoryDataDir = ":memory:"

type Options struct {
	// DataDir holds the collection files (pets.json, adoptions.json, ...).
	DataDir string

	Logger  logger.Logger   // nil means discard
	Metrics *metrics.Metrics // nil disables /metrics
	Stats   *content.Stats   // nil means content.DefaultStats
}

func New(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	// The frontend is served from wherever, so any origin may call us.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	var (
		petRepo   pets.Repository
		adoptRepo submissions.Repository
		volRepo   submissions.Repository
		donRepo   submissions.Repository
		storyRepo stories.Repository
		blogRepo  content.BlogRepository
	)

	if opts.DataDir == MemoryDataDir {
		petRepo = mem.NewPetsRepo(nil)
		adoptRepo = mem.NewSubmissionsRepo()
		volRepo = mem.NewSubmissionsRepo()
		donRepo = mem.NewSubmissionsRepo()
		storyRepo = mem.NewStoriesRepo(nil)
		blogRepo = mem.NewBlogRepo(nil)
	} else {
		dir := opts.DataDir
		petRepo = jsonfile.NewPetsRepo(filepath.Join(dir, "pets.json"))
		adoptRepo = jsonfile.NewSubmissionsRepo(filepath.Join(dir, "adoptions.json"))
		volRepo = jsonfile.NewSubmissionsRepo(filepath.Join(dir, "volunteers.json"))
		donRepo = jsonfile.NewSubmissionsRepo(filepath.Join(dir, "donations.json"))
		storyRepo = jsonfile.NewStoriesRepo(filepath.Join(dir, "stories.json"))
		blogRepo = jsonfile.NewBlogRepo(filepath.Join(dir, "blog.json"))
	}

	petsSvc := pets.NewService(petRepo)
	adoptSvc := adoptions.NewService(submissions.NewService(adoptRepo), petsSvc, log)
	volSvc := submissions.NewService(volRepo)
	donSvc := submissions.NewService(donRepo)
	storiesSvc := stories.NewService(storyRepo)

	stats := content.DefaultStats
	if opts.Stats != nil {
		stats = *opts.Stats
	}

	pets.RegisterRoutes(r, petsSvc, log)
	adoptions.RegisterRoutes(r, adoptSvc, log)
	submissions.RegisterRoutes(r, submissions.Routes{
		Path:       "/api/volunteers",
		Collection: "volunteers",
		Message:    "Volunteer application submitted successfully",
		IDField:    "applicationId",
		ErrMessage: "Unable to submit application",
	}, volSvc, log)
	submissions.RegisterRoutes(r, submissions.Routes{
		Path:       "/api/donations",
		Collection: "donations",
		Message:    "Donation interest submitted successfully",
		IDField:    "donationId",
		ErrMessage: "Unable to submit donation interest",
	}, donSvc, log)
	stories.RegisterRoutes(r, storiesSvc, log)
	content.RegisterRoutes(r, stats, blogRepo, log)

	return r
}
