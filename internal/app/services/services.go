package services

import (
	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/grading"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/config"
	"github.com/okanserdaroglu/campushub/internal/db"
	"github.com/okanserdaroglu/campushub/internal/pkg/auth"
	"github.com/okanserdaroglu/campushub/internal/pkg/email"
	"github.com/okanserdaroglu/campushub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService          *AuthService
	ApplicationService   *ApplicationService
	StudentService       *StudentService
	FacultyMemberService *FacultyMemberService
	SubjectService       *SubjectService
	ResultService        *ResultService
	AttendanceService    *AttendanceService
	FeeService           *FeeService
	AnnouncementService  *AnnouncementService
	AssignmentService    *AssignmentService
}

// NewServices wires every service to its repositories and shared
// infrastructure.
func NewServices(
	cfg *config.Config,
	repos *repositories.Repositories,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	emailService email.Service,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *Services {
	retakePolicy := grading.AllAttempts
	if cfg.Grading.RetakePolicy == config.RetakePolicyLatestAttempt {
		retakePolicy = grading.LatestAttemptOnly
	}

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository, repos.TokenRepository, jwtService, logger),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository, repos.UserRepository, repos.StudentRepository,
			database, emailService, logger),
		StudentService: NewStudentService(
			repos.StudentRepository, repos.UserRepository, database, logger),
		FacultyMemberService: NewFacultyMemberService(
			repos.FacultyMemberRepository, repos.UserRepository, database, logger),
		SubjectService: NewSubjectService(repos.SubjectRepository, logger),
		ResultService: NewResultService(
			repos.MarksRepository, repos.SubjectRepository, repos.StudentRepository,
			retakePolicy, logger),
		AttendanceService: NewAttendanceService(
			repos.AttendanceRepository, repos.SubjectRepository, repos.StudentRepository, logger),
		FeeService: NewFeeService(
			repos.FeeRepository, repos.StudentRepository, logger),
		AnnouncementService: NewAnnouncementService(
			repos.AnnouncementRepository, repos.EventRepository, logger),
		AssignmentService: NewAssignmentService(
			repos.AssignmentRepository, repos.SubjectRepository, repos.StudentRepository,
			fileStorage, logger),
	}
}
