package domain

import (
	"slices"
	"time"
)

type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

// Etapas do funil usadas nas métricas
const (
	StageOpportunity      = 7
	StageNegotiation      = 8
	StageContract         = 9
	StageNoShow           = 39
	StageMeetingScheduled = 40
)

// ClosingStages são as etapas de fechamento na ordem do funil
var ClosingStages = []int{StageOpportunity, StageNegotiation, StageContract}

var closingStageLabels = map[int]string{
	StageOpportunity: "Oportunidade",
	StageNegotiation: "Negociação",
	StageContract:    "Contrato",
}

// UnknownName é usado quando o dono ou o funil não existe nos mapas de usuários/funis
const UnknownName = "Desconhecido"

// UntitledDeal é usado para negócios sem título
const UntitledDeal = "Sem título"

// Deal é um negócio do CRM já validado, com as datas convertidas
type Deal struct {
	ID              int
	Title           string
	Value           float64
	Status          DealStatus
	StageID         int
	OwnerID         int
	PipelineID      int
	AddTime         *time.Time
	UpdateTime      *time.Time
	WonTime         *time.Time
	LostTime        *time.Time
	StageChangeTime *time.Time
	LostReason      *string
}

func IsClosingStage(stageID int) bool {
	return slices.Contains(ClosingStages, stageID)
}

// ClosingStageLabel retorna o nome da etapa de fechamento
func ClosingStageLabel(stageID int) (string, bool) {
	label, ok := closingStageLabels[stageID]
	return label, ok
}

type Activity struct {
	ID       int
	Subject  string
	Type     string
	DealID   *int
	UserID   int
	DueDate  string
	DueTime  string
	Duration string
	Done     bool
	AddTime  *time.Time
}

type User struct {
	ID   int
	Name string
}

type Pipeline struct {
	ID   int
	Name string
}

// EnrichedDeal é a representação de um negócio devolvida pelo endpoint de negócios
type EnrichedDeal struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Value        float64    `json:"value"`
	Status       DealStatus `json:"status"`
	StageID      int        `json:"stage_id"`
	OwnerID      int        `json:"owner_id"`
	OwnerName    string     `json:"owner_name"`
	PipelineID   int        `json:"pipeline_id"`
	PipelineName string     `json:"pipeline_name"`
	AddTime      *string    `json:"add_time"`
	UpdateTime   *string    `json:"update_time"`
	WonTime      *string    `json:"won_time"`
	LostTime     *string    `json:"lost_time"`
	LostReason   *string    `json:"lost_reason"`
}

type DealFilters struct {
	Status string
	Period string
}

// NameIndex resolve o id de um usuário ou funil para o nome exibido
type NameIndex map[int]string

// UserNames indexa os usuários por id; ids repetidos ficam com o último nome
func UserNames(users []User) NameIndex {
	index := make(NameIndex, len(users))
	for _, u := range users {
		index[u.ID] = u.Name
	}
	return index
}

func PipelineNames(pipelines []Pipeline) NameIndex {
	index := make(NameIndex, len(pipelines))
	for _, p := range pipelines {
		index[p.ID] = p.Name
	}
	return index
}

// Name retorna UnknownName para ids ausentes ou sem nome
func (n NameIndex) Name(id int) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return UnknownName
}
