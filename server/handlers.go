package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sgopal/chipdiff"
)

// uploadResult reports the outcome of one uploaded file.
type uploadResult struct {
	File    string `json:"file"`
	Year    int    `json:"year,omitempty"`
	Rows    int    `json:"rows"`
	Skipped int    `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// Upload ingests one or more CSV exports from a multipart form.
// POST /api/upload
func (s *Server) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file in upload"})
		return
	}

	results := make([]uploadResult, 0, len(files))
	rejected := 0
	for _, fh := range files {
		result := uploadResult{File: fh.Filename}

		year, err := chipdiff.YearFromFilename(fh.Filename)
		if err != nil {
			// A malformed name rejects this file only.
			result.Error = err.Error()
			rejected++
			results = append(results, result)
			continue
		}
		result.Year = year

		f, err := fh.Open()
		if err != nil {
			result.Error = err.Error()
			rejected++
			results = append(results, result)
			continue
		}
		records, stats, err := chipdiff.ParseCSV(f, s.session.aliases)
		f.Close()
		if err != nil {
			result.Error = err.Error()
			rejected++
			results = append(results, result)
			continue
		}
		result.Rows = stats.Rows
		result.Skipped = stats.Skipped

		if _, err := s.session.Upsert(year, records); err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	status := http.StatusOK
	if rejected == len(files) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"files": results})
}

// manualEntry is the JSON body of a manual record addition.
type manualEntry struct {
	Year     int    `json:"year" binding:"required"`
	ID       string `json:"id" binding:"required"`
	Customer string `json:"customer"`
	PDM      string `json:"pdm"`
}

// AddRecord merges one manual entry into the session registry.
// POST /api/records
func (s *Server) AddRecord(c *gin.Context) {
	var entry manualEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := chipdiff.NewRecord(entry.ID, entry.Customer, entry.PDM)
	overwritten, err := s.session.Upsert(entry.Year, []chipdiff.Record{record})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": entry.Year, "overwritten": overwritten > 0})
}

// yearInfo describes one loaded year.
type yearInfo struct {
	Year     int `json:"year"`
	Chipsets int `json:"chipsets"`
}

// Years lists the loaded years, ascending.
// GET /api/years
func (s *Server) Years(c *gin.Context) {
	years := []yearInfo{}
	s.session.Snapshot(func(g *chipdiff.Registry) {
		for y := range g.Years() {
			years = append(years, yearInfo{Year: y, Chipsets: g.Get(y).Len()})
		}
	})
	c.JSON(http.StatusOK, gin.H{"years": years})
}

// yearParam parses the :year path parameter.
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return 0, false
	}
	return year, true
}

// Preview returns the raw records of one year.
// GET /api/preview/:year
func (s *Server) Preview(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	records := []chipdiff.Record{}
	s.session.Snapshot(func(g *chipdiff.Registry) {
		for r := range g.Get(year).Records() {
			records = append(records, r)
		}
	})
	c.JSON(http.StatusOK, gin.H{"year": year, "records": records})
}

// Classification returns the Added / Removed / Reappeared sets of one year.
// GET /api/classification/:year
func (s *Server) Classification(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var result *chipdiff.Classification
	s.session.Snapshot(func(g *chipdiff.Registry) {
		result = chipdiff.Classify(g, year)
	})
	c.JSON(http.StatusOK, result)
}
