package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/controllers"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/transport"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/roster"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Relational storage
	db, err := sql.Open("postgres", s.config.DatabaseURL)
	if err != nil {
		logging.Log.Errorf("failed to open database: %v", err)
		panic("failed to open database")
	}
	if err := db.Ping(); err != nil {
		logging.Log.Errorf("failed to reach database: %v", err)
		panic("failed to reach database")
	}
	if err := storage.CreateSchema(db); err != nil {
		logging.Log.Errorf("failed to ensure schema: %v", err)
		panic("failed to ensure schema")
	}

	teamStorage := &storage.SQLTeamStorage{DB: db}
	pictureStorage := &storage.SQLPictureStorage{DB: db}
	voterStorage := &storage.SQLVoterStorage{DB: db}

	// Blob storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}
	blobStorage := &storage.S3BlobStorage{
		Client: s3.NewFromConfig(cfg),
		Bucket: s.config.BucketName,
		Region: s.config.BucketRegion,
	}

	// Collaborators
	tokens := &auth.Tokens{
		Secret:   []byte(s.config.JWTSecret),
		AdminTTL: s.config.AdminTokenTTL,
		UserTTL:  s.config.UserTokenTTL,
	}
	verifier := &auth.CredentialVerifier{
		AdminUsername:     s.config.AdminUsername,
		AdminPasswordHash: s.config.AdminPasswordHash,
	}
	rosterClient := roster.NewClient(s.config.RosterURL)

	//Register controllers
	adminController := controllers.NewAdminController(teamStorage, pictureStorage, blobStorage,
		verifier, tokens, s.config.MaxUploadSizeMB*1024*1024)
	adminController.RegisterRoutes(r)
	userController := controllers.NewUserController(teamStorage, voterStorage, rosterClient, tokens)
	userController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
