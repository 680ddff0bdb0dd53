// Package fixtures holds the seed data loaded into the in-memory
// repositories at startup. The console always boots with a populated
// directory so every screen has something to show.
package fixtures

import (
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/contract"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/department"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/role"
	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Departments() []department.Department {
	return []department.Department{
		{ID: 1, Name: "Tecnologia"},
		{ID: 2, Name: "Produto"},
		{ID: 3, Name: "Dados"},
		{ID: 4, Name: "RH"},
		{ID: 5, Name: "Marketing"},
		{ID: 6, Name: "Financeiro"},
	}
}

func Roles() []role.Role {
	return []role.Role{
		{ID: 1, Name: "Engenheira de Software", DepartmentID: 1, Salary: "R$ 12.500,00"},
		{ID: 2, Name: "Engenheiro de Dados", DepartmentID: 3, Salary: "R$ 13.000,00"},
		{ID: 3, Name: "Product Manager", DepartmentID: 2, Salary: "R$ 14.000,00"},
		{ID: 4, Name: "Designer de Produto", DepartmentID: 2, Salary: "R$ 9.800,00"},
		{ID: 5, Name: "Analista de RH", DepartmentID: 4, Salary: "R$ 7.200,00"},
		{ID: 6, Name: "Analista de Marketing", DepartmentID: 5, Salary: "R$ 6.900,00"},
		{ID: 7, Name: "Analista Financeiro", DepartmentID: 6, Salary: "R$ 8.400,00"},
	}
}

func Contracts() []contract.Contract {
	return []contract.Contract{
		{ID: 1, Name: "CLT", Description: "Contrato em regime CLT, jornada integral"},
		{ID: 2, Name: "PJ", Description: "Prestação de serviços como pessoa jurídica"},
		{ID: 3, Name: "Estágio", Description: "Contrato de estágio com jornada reduzida"},
		{ID: 4, Name: "Temporário", Description: "Contrato por prazo determinado"},
	}
}

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID: 1, Name: "Ana Souza", CPF: "39053344705", RG: "12.345.678-9",
			BirthDate: date(1992, time.April, 12), Email: "ana.souza@rh-war.com.br",
			Phone: "+5511987654321", Role: "Engenheira de Software", Department: "Tecnologia",
			HireDate: date(2021, time.March, 1), EmploymentType: "CLT", Status: employee.StatusActive,
		},
		{
			ID: 2, Name: "Bruno Lima", CPF: "52998224725", RG: "23.456.789-0",
			BirthDate: date(1988, time.September, 3), Email: "bruno.lima@rh-war.com.br",
			Phone: "+5511976543210", Role: "Engenheiro de Dados", Department: "Dados",
			HireDate: date(2020, time.July, 15), EmploymentType: "CLT", Status: employee.StatusActive,
		},
		{
			ID: 3, Name: "Clara Dias", CPF: "16899535009", RG: "34.567.890-1",
			BirthDate: date(1995, time.January, 27), Email: "clara.dias@rh-war.com.br",
			Phone: "+5521998765432", Role: "Designer de Produto", Department: "Produto",
			HireDate: date(2022, time.February, 7), EmploymentType: "PJ", Status: employee.StatusActive,
		},
		{
			ID: 4, Name: "Diego Castro", CPF: "71428793860", RG: "45.678.901-2",
			BirthDate: date(1990, time.June, 18), Email: "diego.castro@rh-war.com.br",
			Phone: "+5511965432109", Role: "Product Manager", Department: "Produto",
			HireDate: date(2019, time.November, 25), EmploymentType: "CLT", Status: employee.StatusActive,
		},
		{
			ID: 5, Name: "Elisa Prado", CPF: "11144477735", RG: "56.789.012-3",
			BirthDate: date(1993, time.December, 5), Email: "elisa.prado@rh-war.com.br",
			Phone: "+5531987651234", Role: "Analista de RH", Department: "RH",
			HireDate: date(2023, time.January, 9), EmploymentType: "CLT", Status: employee.StatusActive,
		},
		{
			ID: 6, Name: "Felipe Rocha", CPF: "86288366757", RG: "67.890.123-4",
			BirthDate: date(1985, time.March, 30), Email: "felipe.rocha@rh-war.com.br",
			Phone: "+5511954321098", Role: "Analista Financeiro", Department: "Financeiro",
			HireDate: date(2018, time.May, 14), EmploymentType: "CLT", Status: employee.StatusInactive,
		},
	}
}

func LeaveRequests() []leave.LeaveRequest {
	employees := Employees()
	snap := func(i int) employee.Snapshot { return employees[i-1].Snapshot() }

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	return []leave.LeaveRequest{
		{
			ID: 1, Employee: snap(1), Type: leave.TypeVacation,
			StartDate: date(year, month, 7), EndDate: date(year, month, 14),
			Status: leave.StatusApproved,
		},
		{
			ID: 2, Employee: snap(2), Type: leave.TypeHomeOffice,
			StartDate: date(year, month, 2), EndDate: date(year, month, 6),
			Status: leave.StatusApproved,
		},
		{
			ID: 3, Employee: snap(3), Type: leave.TypeMedicalLeave,
			StartDate: date(year, month, 10), EndDate: date(year, month, 12),
			Status: leave.StatusPending,
		},
		{
			ID: 4, Employee: snap(4), Type: leave.TypeBusinessTrip,
			StartDate: date(year, month, 20), EndDate: date(year, month, 24),
			Status: leave.StatusApproved,
		},
		{
			ID: 5, Employee: snap(5), Type: leave.TypePersonal,
			StartDate: date(year, month, 15), EndDate: date(year, month, 15),
			Status: leave.StatusRejected,
		},
	}
}

func Jobs() []recruitment.Job {
	return []recruitment.Job{
		{
			ID: 1, Title: "Engenheira de Software Sênior", Department: "Tecnologia",
			Description: "Desenvolvimento de serviços backend e APIs.",
			Status:      recruitment.JobStatusOpen,
		},
		{
			ID: 2, Title: "Analista de Dados", Department: "Dados",
			Description: "Modelagem e análise de dados de produto.",
			Status:      recruitment.JobStatusOpen,
		},
		{
			ID: 3, Title: "Coordenador de Marketing", Department: "Marketing",
			Description: "Planejamento de campanhas e gestão do time.",
			Status:      recruitment.JobStatusClosed,
		},
	}
}

func Stages() []recruitment.Stage {
	return []recruitment.Stage{
		{ID: 1, Name: "Triagem", Order: 1},
		{ID: 2, Name: "Entrevista RH", Order: 2},
		{ID: 3, Name: "Entrevista Técnica", Order: 3},
		{ID: 4, Name: "Proposta", Order: 4},
	}
}

func Candidates() []recruitment.Candidate {
	return []recruitment.Candidate{
		{ID: 1, Name: "Carla Nunes", JobID: 1, StageID: 1, ResumeSummary: "8 anos de experiência com Go e sistemas distribuídos."},
		{ID: 2, Name: "Diego Ramos", JobID: 1, StageID: 3, ResumeSummary: "Backend em fintechs, foco em APIs de pagamento."},
		{ID: 3, Name: "Fernanda Alves", JobID: 2, StageID: 2, ResumeSummary: "Analista de BI migrando para engenharia de dados."},
		{ID: 4, Name: "Gustavo Pinto", JobID: 2, StageID: 1, ResumeSummary: "Recém-formado com projetos em pipelines de dados."},
	}
}

func Reviews() []review.Review {
	employees := Employees()
	return []review.Review{
		{
			ID: 1, Employee: employees[0].Snapshot(), Date: date(2024, time.June, 10),
			Reviewer: "Maria Silva", Rating: 5,
			Feedback: "Entrega consistente e de alta qualidade; referência técnica do time.",
		},
		{
			ID: 2, Employee: employees[1].Snapshot(), Date: date(2024, time.June, 12),
			Reviewer: "Maria Silva", Rating: 4,
			Feedback: "Ótimo domínio técnico; pode melhorar a comunicação com o produto.",
		},
		{
			ID: 3, Employee: employees[2].Snapshot(), Date: date(2024, time.July, 2),
			Reviewer: "Fernanda Souza", Rating: 3,
			Feedback: "Boas entregas visuais, mas prazos estouraram em dois projetos.",
		},
	}
}

// Users returns the console accounts. Passwords are hashed at seed time so
// no hash material lives in the source tree.
func Users() ([]user.User, error) {
	accounts := []struct {
		id       int
		name     string
		login    string
		password string
		role     user.Role
	}{
		{1, "Administrador", "admin", "admin", user.RoleAdministrator},
		{2, "Maria Silva", "maria.silva", "wv160517", user.RoleManager},
		{3, "Fernanda Souza", "fernanda.souza", "wv160517", user.RoleCoordinator},
		{4, "João Pereira", "joao.pereira", "wv160517", user.RoleUser},
	}

	users := make([]user.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, user.User{
			ID:           a.id,
			Name:         a.name,
			Login:        a.login,
			PasswordHash: string(hash),
			Role:         a.role,
		})
	}
	return users, nil
}
