package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedFormat is returned for export formats other than json/csv.
var ErrUnsupportedFormat = errors.New(constants.MsgExportUnsupported)

// ErrPdfStub marks the pdf export as not implemented. Handlers map it to
// HTTP 501.
var ErrPdfStub = errors.New(constants.MsgPdfExportStub)

// LgpdService implements the data-subject portal: consents, requests, the
// my-data aggregate and the export in json/csv.
type LgpdService struct {
	lgpd     *repositories.LgpdRepository
	members  *repositories.MemberRepository
	visitors *repositories.VisitorRepository
	tithes   *repositories.TitheRepository
	signer   *common.ExportSigner
}

func NewLgpdService(lgpd *repositories.LgpdRepository, members *repositories.MemberRepository,
	visitors *repositories.VisitorRepository, tithes *repositories.TitheRepository,
	signer *common.ExportSigner) *LgpdService {
	return &LgpdService{
		lgpd:     lgpd,
		members:  members,
		visitors: visitors,
		tithes:   tithes,
		signer:   signer,
	}
}

func (s *LgpdService) GrantConsent(ctx context.Context, session *common.SessionData, req *dtos.LgpdConsentRequest) (*gormModels.LgpdConsent, error) {
	verr := newValidationError()
	verr.require("purpose", req.Purpose)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	consent := &gormModels.LgpdConsent{
		UserID:  session.UserID,
		Purpose: req.Purpose,
		Granted: req.Granted,
	}
	if err := s.lgpd.CreateConsent(ctx, consent); err != nil {
		return nil, err
	}
	return consent, nil
}

func (s *LgpdService) ListConsents(ctx context.Context, session *common.SessionData) ([]gormModels.LgpdConsent, error) {
	return s.lgpd.ListConsentsByUser(ctx, session.UserID)
}

func (s *LgpdService) RevokeConsent(ctx context.Context, session *common.SessionData, consentID string) error {
	return s.lgpd.RevokeConsent(ctx, consentID, session.UserID)
}

func (s *LgpdService) CreateRequest(ctx context.Context, session *common.SessionData, req *dtos.LgpdRequestRequest) (*gormModels.LgpdRequest, error) {
	verr := newValidationError()
	verr.require("requestType", req.RequestType)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	request := &gormModels.LgpdRequest{
		UserID:      session.UserID,
		RequestType: req.RequestType,
		Details:     req.Details,
	}
	if err := s.lgpd.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *LgpdService) ListRequests(ctx context.Context, session *common.SessionData) ([]gormModels.LgpdRequest, error) {
	return s.lgpd.ListRequestsByUser(ctx, session.UserID)
}

// MyData aggregates everything stored about the data subject. The pieces
// are independent, so they load concurrently.
func (s *LgpdService) MyData(ctx context.Context, session *common.SessionData) (*dtos.MyDataResponse, error) {
	resp := &dtos.MyDataResponse{}

	g, gctx := errgroup.WithContext(ctx)

	if session.MemberID != nil {
		memberID := *session.MemberID
		g.Go(func() error {
			member, err := s.members.GetByID(gctx, memberID)
			if err != nil && err != repositories.ErrNotFound {
				return err
			}
			resp.Member = member
			return nil
		})
		g.Go(func() error {
			tithes, err := s.tithes.ListByMember(gctx, memberID)
			if err != nil {
				return err
			}
			resp.Tithes = tithes
			return nil
		})
	}

	if session.VisitorID != nil {
		visitorID := *session.VisitorID
		g.Go(func() error {
			visitor, err := s.visitors.GetByID(gctx, visitorID)
			if err != nil && err != repositories.ErrNotFound {
				return err
			}
			resp.Visitor = visitor
			return nil
		})
	}

	g.Go(func() error {
		consents, err := s.lgpd.ListConsentsByUser(gctx, session.UserID)
		if err != nil {
			return err
		}
		resp.Consents = consents
		return nil
	})

	g.Go(func() error {
		requests, err := s.lgpd.ListRequestsByUser(gctx, session.UserID)
		if err != nil {
			return err
		}
		resp.Requests = requests
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Export renders the my-data aggregate in the requested format. PDF is a
// stub for now.
func (s *LgpdService) Export(ctx context.Context, session *common.SessionData, format string) ([]byte, string, error) {
	switch format {
	case "json", "csv":
	case "pdf":
		return nil, "", ErrPdfStub
	default:
		return nil, "", ErrUnsupportedFormat
	}

	data, err := s.MyData(ctx, session)
	if err != nil {
		return nil, "", err
	}

	if format == "json" {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode export: %w", err)
		}
		return out, "application/json", nil
	}

	return renderCsv(data), "text/csv", nil
}

// SignedExportLink issues a single-use download URL valid for 15 minutes.
func (s *LgpdService) SignedExportLink(session *common.SessionData, format string) (*dtos.ExportLinkResponse, error) {
	switch format {
	case "json", "csv":
	default:
		return nil, ErrUnsupportedFormat
	}

	token, err := s.signer.Sign(session.UserID, format, 15*time.Minute)
	if err != nil {
		return nil, err
	}

	return &dtos.ExportLinkResponse{
		URL:       "/api/lgpd/export/download?token=" + token,
		ExpiresIn: 900,
	}, nil
}

// renderCsv flattens the aggregate into section/field/value rows, which keeps
// the csv stable regardless of which sections the subject has data in.
func renderCsv(data *dtos.MyDataResponse) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"section", "field", "value"})

	writeSection := func(section string, v any) {
		if v == nil {
			return
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}

		var asMap map[string]any
		if err := json.Unmarshal(raw, &asMap); err == nil {
			for field, value := range asMap {
				_ = w.Write([]string{section, field, fmt.Sprintf("%v", value)})
			}
			return
		}

		var asList []map[string]any
		if err := json.Unmarshal(raw, &asList); err == nil {
			for i, item := range asList {
				for field, value := range item {
					_ = w.Write([]string{fmt.Sprintf("%s[%d]", section, i), field, fmt.Sprintf("%v", value)})
				}
			}
		}
	}

	writeSection("member", data.Member)
	writeSection("visitor", data.Visitor)
	writeSection("tithes", data.Tithes)
	writeSection("consents", data.Consents)
	writeSection("requests", data.Requests)

	w.Flush()
	return buf.Bytes()
}
