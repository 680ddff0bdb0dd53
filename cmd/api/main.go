package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rh-war/hr-console-backend-go/internal/config"
	"github.com/rh-war/hr-console-backend-go/internal/fixtures"
	appHTTP "github.com/rh-war/hr-console-backend-go/internal/handler/http"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/jwt"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/rh-war/hr-console-backend-go/internal/service/assist"
	authService "github.com/rh-war/hr-console-backend-go/internal/service/auth"
	employeeService "github.com/rh-war/hr-console-backend-go/internal/service/employee"
	leaveService "github.com/rh-war/hr-console-backend-go/internal/service/leave"
	masterService "github.com/rh-war/hr-console-backend-go/internal/service/master"
	recruitmentService "github.com/rh-war/hr-console-backend-go/internal/service/recruitment"
	reportService "github.com/rh-war/hr-console-backend-go/internal/service/report"
	reviewService "github.com/rh-war/hr-console-backend-go/internal/service/review"
	userService "github.com/rh-war/hr-console-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	seedUsers, err := fixtures.Users()
	if err != nil {
		log.Fatal("Failed to seed users:", err)
	}

	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	departmentRepo := memory.NewDepartmentRepository(fixtures.Departments())
	roleRepo := memory.NewRoleRepository(fixtures.Roles())
	contractRepo := memory.NewContractRepository(fixtures.Contracts())
	leaveRequestRepo := memory.NewLeaveRequestRepository(fixtures.LeaveRequests())
	jobRepo := memory.NewJobRepository(fixtures.Jobs())
	stageRepo := memory.NewStageRepository(fixtures.Stages())
	candidateRepo := memory.NewCandidateRepository(fixtures.Candidates())
	reviewRepo := memory.NewReviewRepository(fixtures.Reviews())
	userRepo := memory.NewUserRepository(seedUsers)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	assistSvc := assist.NewAssistService(cfg.Assist.APIKey)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, roleRepo, contractRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(jobRepo, stageRepo, candidateRepo)
	reviewSvc := reviewService.NewReviewService(reviewRepo, employeeRepo, assistSvc)
	userSvc := userService.NewUserService(userRepo)
	reportSvc := reportService.NewReportService(employeeRepo, leaveRequestRepo, jobRepo, stageRepo, candidateRepo, reviewRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	recruitmentHandler := appHTTP.NewRecruitmentHandler(recruitmentSvc)
	reviewHandler := appHTTP.NewReviewHandler(reviewSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	assistHandler := appHTTP.NewAssistHandler(assistSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		employeeHandler,
		masterHandler,
		leaveHandler,
		recruitmentHandler,
		reviewHandler,
		userHandler,
		reportHandler,
		assistHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
