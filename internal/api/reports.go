package api

import (
	"context"
	"io"
	"net/http"

	"github.com/folioview/folioview-cli/internal/models"
)

// reportFileField is the multipart field name the report parser expects.
const reportFileField = "file"

// UploadReport sends a broker PDF report for server-side extraction and
// returns how many holdings, transactions and dividends were parsed out.
func (c *Client) UploadReport(ctx context.Context, fileName string, content io.Reader) (models.ReportExtraction, error) {
	payload, contentType, err := encodeMultipartBody(reportFileField, fileName, content)
	if err != nil {
		return models.ReportExtraction{}, err
	}
	output := models.ReportExtraction{}
	err = c.send(ctx, http.MethodPost, "/reports/upload", payload, contentType, requestOptions{}, &output)
	if err != nil {
		return models.ReportExtraction{}, err
	}
	return output, nil
}
