package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	StudentRepository       *StudentRepository
	FacultyMemberRepository *FacultyMemberRepository
	SubjectRepository       *SubjectRepository
	MarksRepository         *MarksRepository
	AttendanceRepository    *AttendanceRepository
	ApplicationRepository   *ApplicationRepository
	FeeRepository           *FeeRepository
	AnnouncementRepository  *AnnouncementRepository
	EventRepository         *EventRepository
	AssignmentRepository    *AssignmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		StudentRepository:       NewStudentRepository(db),
		FacultyMemberRepository: NewFacultyMemberRepository(db),
		SubjectRepository:       NewSubjectRepository(db),
		MarksRepository:         NewMarksRepository(db),
		AttendanceRepository:    NewAttendanceRepository(db),
		ApplicationRepository:   NewApplicationRepository(db),
		FeeRepository:           NewFeeRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		EventRepository:         NewEventRepository(db),
		AssignmentRepository:    NewAssignmentRepository(db),
	}
}
