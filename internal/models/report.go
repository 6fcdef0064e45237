package models

// ReportExtraction is the backend's answer to an uploaded broker report:
// how many records the server-side parser extracted from the PDF.
type ReportExtraction struct {
	Holdings     int `json:"holdings"`
	Transactions int `json:"transactions"`
	Dividends    int `json:"dividends"`
}

// AdminActionResult is the generic acknowledgement of an admin operation
// (price refresh, migrations, logo crawling, user data reset).
type AdminActionResult struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Affected int    `json:"affected"`
}
