package main

import (
	"github.com/aka-azad/skill-space-server/config"
	"github.com/aka-azad/skill-space-server/database"
	assignmentRoutes "github.com/aka-azad/skill-space-server/routers/assignmentRoutes"
	authRoutes "github.com/aka-azad/skill-space-server/routers/authRoutes"
	classRoutes "github.com/aka-azad/skill-space-server/routers/classRoutes"
	enrollmentRoutes "github.com/aka-azad/skill-space-server/routers/enrollmentRoutes"
	evaluationRoutes "github.com/aka-azad/skill-space-server/routers/evaluationRoutes"
	paymentRoutes "github.com/aka-azad/skill-space-server/routers/paymentRoutes"
	statsRoutes "github.com/aka-azad/skill-space-server/routers/statsRoutes"
	teacherRoutes "github.com/aka-azad/skill-space-server/routers/teacherRoutes"
	userRoutes "github.com/aka-azad/skill-space-server/routers/userRoutes"
	"github.com/aka-azad/skill-space-server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to SkillSpace API")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	classRoutes.SetupClassRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	evaluationRoutes.SetupEvaluationRoutes(app)
	statsRoutes.SetupStatsRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	// Nightly reconciliation of the denormalized enrolment/submission counters
	utils.InitializeCounterScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
