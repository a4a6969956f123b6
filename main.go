package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"assessment-service/internal/db"
	"assessment-service/internal/evaluation"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/seed"
	"assessment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.CloseMongo()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("assessment_service")

	// Repositories
	itemRepo := repository.NewChecklistItemRepository(database)
	resultRepo := repository.NewChecklistResultRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	userRepo := repository.NewUserRepository(database)

	if os.Getenv("SEED_ON_START") == "true" {
		if err := seed.Run(context.Background(), itemRepo, questionRepo, userRepo); err != nil {
			log.Fatalf("Failed to seed reference data: %v", err)
		}
	}

	// Checklist
	checklistService := service.NewChecklistService(itemRepo, resultRepo)
	checklistHandler := handlers.NewChecklistHandler(checklistService)

	// Tests and scoring
	scorer := evaluation.NewScorer(nil)
	testService := service.NewTestService(questionRepo, answerRepo, scorer)
	testHandler := handlers.NewTestHandler(testService)

	// Question catalog admin
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Progress reports
	progressService := service.NewProgressService(itemRepo, resultRepo, questionRepo, answerRepo, progressRepo, userRepo)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Public routes - checklist
	publicChecklist := r.Group("/public/assessment/checklist")
	{
		publicChecklist.GET("/items", func(c *gin.Context) {
			checklistHandler.ListItems(c)
			if publisher != nil {
				publisher.Publish("assessment.checklist.listed", nil)
			}
		})
		publicChecklist.GET("/:itemId", func(c *gin.Context) {
			checklistHandler.GetResult(c)
			if publisher != nil {
				publisher.Publish("assessment.checklist.result_viewed", gin.H{"itemId": c.Param("itemId")})
			}
		})
		publicChecklist.POST("/", func(c *gin.Context) {
			checklistHandler.SaveResult(c)
			if publisher != nil {
				publisher.Publish("assessment.checklist.saved", gin.H{"timestamp": time.Now()})
			}
		})
	}

	// Public routes - tests
	publicTest := r.Group("/public/assessment/test")
	{
		publicTest.GET("/questions", func(c *gin.Context) {
			testHandler.ListQuestions(c)
			if publisher != nil {
				publisher.Publish("assessment.question.listed", nil)
			}
		})
		publicTest.GET("/:questionId", func(c *gin.Context) {
			testHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("assessment.question.viewed", gin.H{"questionId": c.Param("questionId")})
			}
		})
		publicTest.GET("/:questionId/answer", func(c *gin.Context) {
			testHandler.GetAnswer(c)
			if publisher != nil {
				publisher.Publish("assessment.answer.viewed", gin.H{"questionId": c.Param("questionId")})
			}
		})
		publicTest.POST("/", func(c *gin.Context) {
			testHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("assessment.answer.scored", gin.H{"timestamp": time.Now()})
			}
		})
	}

	// Public routes - progress
	publicProgress := r.Group("/public/assessment/progress")
	{
		publicProgress.GET("/:userId", func(c *gin.Context) {
			progressHandler.GetReport(c)
			if publisher != nil {
				publisher.Publish("assessment.progress.recorded", gin.H{
					"user_id":   c.Param("userId"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	setupProtectedRoutes(r, questionHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6677"
	}
	r.Run(":" + port)
}

func setupProtectedRoutes(r *gin.Engine, questionHandler *handlers.QuestionHandler, publisher *event.EventPublisher) {
	protectedQuestion := r.Group("/protected/assessment/question")
	{
		protectedQuestion.POST("/", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			if publisher != nil {
				publisher.Publish("assessment.question.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedQuestion.PUT("/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			if publisher != nil {
				publisher.Publish("assessment.question.updated", gin.H{
					"question_id": c.Param("id"),
					"user_id":     c.GetHeader("X-User-ID"),
					"timestamp":   time.Now(),
				})
			}
		})
		protectedQuestion.DELETE("/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			if publisher != nil {
				publisher.Publish("assessment.question.deleted", gin.H{
					"question_id": c.Param("id"),
					"user_id":     c.GetHeader("X-User-ID"),
					"timestamp":   time.Now(),
				})
			}
		})
	}

	// Authentication middleware for protected routes
	protectedQuestion.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// Request logging for protected routes
	protectedQuestion.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[ADMIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))
}
