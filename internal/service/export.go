package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/connaissance/fest-api/internal/domain"
)

const (
	ExportFilename   = "participants.csv"
	exportTimeLayout = "02/01/2006 03:04:05 PM"
	istOffsetSeconds = 5*60*60 + 30*60
)

// IST is the fixed UTC+05:30 zone registration times are exported in.
var IST = time.FixedZone("IST", istOffsetSeconds)

var exportHeader = []string{"ID", "Name", "Email", "Phone", "College", "Event", "Registered At"}

type ParticipantLister interface {
	FindAll(ctx context.Context, eventID *uint) ([]domain.Participant, error)
}

type ExportService struct {
	participants ParticipantLister
}

func NewExportService(participants ParticipantLister) *ExportService {
	return &ExportService{
		participants: participants,
	}
}

// ExportParticipants renders the participants, newest first and optionally
// limited to one event, as a complete CSV document.
func (s *ExportService) ExportParticipants(ctx context.Context, eventID *uint) ([]byte, error) {
	participants, err := s.participants.FindAll(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.participants.FindAll -> %w", err)
	}

	var buf bytes.Buffer
	if err = WriteParticipantsCSV(&buf, participants); err != nil {
		return nil, fmt.Errorf("WriteParticipantsCSV -> %w", err)
	}

	return buf.Bytes(), nil
}

func WriteParticipantsCSV(w io.Writer, participants []domain.Participant) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, p := range participants {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Email,
			p.Phone,
			p.College,
			p.EventName,
			FormatRegisteredAt(p.RegisteredAt),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// FormatRegisteredAt shows a stored UTC instant as IST wall-clock time,
// e.g. 15/03/2026 02:30:00 PM.
func FormatRegisteredAt(t time.Time) string {
	return t.In(IST).Format(exportTimeLayout)
}
