package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/jinxsazzad/sportifyu-server/config"
	"github.com/jinxsazzad/sportifyu-server/controller"
	"github.com/jinxsazzad/sportifyu-server/middleware"
	"github.com/jinxsazzad/sportifyu-server/storage"
	"github.com/jinxsazzad/sportifyu-server/token"
)

const landingPage = `
  <h1 style="text-align:center; margin-top:5rem">
      It's the backend server of the
      <b style="color:red;padding:2rem">SportifyU</b> site!
      <br/><br/>
      Site port: <b style="color:red"> %s </b>
  </h1>`

func main() {
	// .env is optional; deployments set real environment variables.
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	store, err := storage.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("mongodb connect: ", err)
	}
	log.Println("MongoDB connected")

	tokens := token.NewService(cfg.AccessTokenSecret, cfg.TokenTTL)
	gate := middleware.NewGate(tokens, store)

	auth := controller.NewAuthController(tokens)
	users := controller.NewUserController(store)
	classes := controller.NewClassController(store)
	enrollments := controller.NewEnrollmentController(store)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, landingPage, cfg.Port)
	})

	router.Post("/jwt", auth.HandleIssueToken)

	router.Put("/users/{email}", users.HandleUpsertUser)
	router.With(gate.RequireAuth).Get("/users/{email}", users.HandleGetUser)
	router.With(gate.RequireAuth, gate.RequireAdmin).Get("/users", users.HandleListUsers)
	router.Get("/instructors", users.HandleListInstructors)

	router.Get("/classes", classes.HandleListClasses)
	router.Get("/classes/approved", classes.HandleListApproved)
	router.Get("/popular-classes", classes.HandlePopularClasses)
	router.Get("/classes/id/{id}", classes.HandleGetClass)
	router.With(gate.RequireAuth).Get("/classes/email/{email}", classes.HandleListByInstructor)
	router.With(gate.RequireAuth).Post("/classes", classes.HandleNewClass)
	router.With(gate.RequireAuth).Patch("/classes/update-instructor/{id}", classes.HandleInstructorUpdate)
	router.With(gate.RequireAuth).Patch("/classes/update-student/{id}", classes.HandleStudentUpdate)
	router.With(gate.RequireAuth, gate.RequireAdmin).Put("/classes/{classId}/status", classes.HandleSetStatus)
	router.With(gate.RequireAuth, gate.RequireAdmin).Put("/classes/{classId}/feedback", classes.HandleFeedback)
	router.With(gate.RequireAuth).Delete("/classes/id/{id}", classes.HandleDeleteClass)

	router.With(gate.RequireAuth).Post("/students-classes", enrollments.HandleNewEnrollment)
	router.With(gate.RequireAuth).Get("/student-classes/{email}", enrollments.HandleListSelected)
	router.With(gate.RequireAuth).Get("/student-classes/id/{id}", enrollments.HandleGetEnrollment)
	router.With(gate.RequireAuth).Delete("/student-classes/id/{id}", enrollments.HandleDeleteEnrollment)

	log.Println("SportifyU server listening on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
