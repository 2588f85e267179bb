// Package documents renders official violation record documents.
package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"opsportal/internal/application/compliance/usecases"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/logger"
)

// BluePageGenerator writes violation record PDFs to a local records
// directory. The directory is served statically, so the returned URL is
// baseURL plus the generated file name.
type BluePageGenerator struct {
	dir     string
	baseURL string
	logger  logger.Interface
}

func NewBluePageGenerator(dir, baseURL string, logger logger.Interface) (*BluePageGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create records directory: %w", err)
	}

	return &BluePageGenerator{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (g *BluePageGenerator) Generate(ctx context.Context, data usecases.BluePageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text("OFFICIAL VIOLATION RECORD", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  18,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("BLUE PAGE ISSUED", props.Text{
					Top:   2,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  14,
					Color: color.Color{Red: 20, Green: 60, Blue: 160},
				})
			})
		})
	})

	rows := [][]string{
		{"VIOLATION", "DEADLINE MISSED"},
		{"TASK", data.TaskTitle},
		{"EMPLOYEE", fmt.Sprintf("%s (%s)", data.AgentName, data.AgentEmployeeID)},
		{"DEADLINE", biztime.FormatInBizTimezone(data.Deadline, "02 Jan 2006 15:04 MST")},
		{"ISSUED", biztime.FormatInBizTimezone(data.IssuedAt, "02 Jan 2006 15:04 MST")},
		{"PENALTY", fmt.Sprintf("INR %d", data.PenaltyAmount)},
	}

	m.Row(8, func() {})
	m.TableList([]string{"", ""}, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{4, 8},
		},
		ContentProp: props.TableListContent{
			Size:      11,
			GridSizes: []uint{4, 8},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 235, Green: 240, Blue: 250},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(20, func() {
		m.Col(12, func() {
			m.Text("This record is issued automatically by the compliance engine. Repeated violations may lead to suspension.", props.Text{
				Top:   10,
				Size:  9,
				Align: consts.Center,
			})
		})
	})

	fileName := fmt.Sprintf("violation_%d_%d.pdf", data.TaskID, time.Now().UnixMilli())
	path := filepath.Join(g.dir, fileName)

	if err := m.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write violation record: %w", err)
	}

	url := fmt.Sprintf("%s/%s", g.baseURL, fileName)
	g.logger.Infow("violation record generated", "task_id", data.TaskID, "path", path)

	return url, nil
}
