package constants

import (
	"database/sql/driver"
	"fmt"
)

// CatechumenStage mirrors the Postgres ENUM 'catechumen_stage'
type CatechumenStage string

const (
	StageInProgress CatechumenStage = "em_andamento"
	StageReady      CatechumenStage = "apto"
	StageConcluded  CatechumenStage = "concluido"
)

func (s CatechumenStage) String() string { return string(s) }

func (s CatechumenStage) Valid() bool {
	switch s {
	case StageInProgress, StageReady, StageConcluded:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface
func (s *CatechumenStage) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = CatechumenStage(v)
	case []byte:
		*s = CatechumenStage(v)
	default:
		return fmt.Errorf("CatechumenStage: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s CatechumenStage) Value() (driver.Value, error) { return string(s), nil }

// CommunionStatus mirrors the Postgres ENUM 'communion_status'
type CommunionStatus string

const (
	CommunionCommuning    CommunionStatus = "comungante"
	CommunionNonCommuning CommunionStatus = "nao_comungante"
)

func (c CommunionStatus) String() string { return string(c) }

// EcclesiasticalRole mirrors the Postgres ENUM 'ecclesiastical_role'
type EcclesiasticalRole string

const (
	EcclMember    EcclesiasticalRole = "membro"
	EcclDeacon    EcclesiasticalRole = "diacono"
	EcclPresbyter EcclesiasticalRole = "presbitero"
	EcclPastor    EcclesiasticalRole = "pastor"
)

func (e EcclesiasticalRole) String() string { return string(e) }

// MemberStatus mirrors the Postgres ENUM 'member_status'
type MemberStatus string

const (
	MemberActive       MemberStatus = "ativo"
	MemberInactive     MemberStatus = "inativo"
	MemberTransferred  MemberStatus = "transferido"
	MemberInDiscipline MemberStatus = "em_disciplina"
)

func (m MemberStatus) String() string { return string(m) }

// AuditAction is the action recorded in an audit log row
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// BulletinStatus tracks bulletin publication
type BulletinStatus string

const (
	BulletinDraft     BulletinStatus = "rascunho"
	BulletinPublished BulletinStatus = "publicado"
)

// LgpdRequestStatus tracks the lifecycle of a data-subject request
type LgpdRequestStatus string

const (
	LgpdRequestPending   LgpdRequestStatus = "pendente"
	LgpdRequestCompleted LgpdRequestStatus = "concluida"
	LgpdRequestRejected  LgpdRequestStatus = "rejeitada"
)
