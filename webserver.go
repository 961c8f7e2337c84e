package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	if config == nil {
		config = defaultConfig()
	}
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APICompareRequest represents a request to run a comparison. FeeRate and
// FixedFee are pointers so an explicit zero fee is distinguishable from an
// omitted field; only omitted fields fall back to the server config.
type APICompareRequest struct {
	Income             float64         `json:"income"`
	Expense            float64         `json:"expense"`
	Jurisdiction       string          `json:"jurisdiction"`
	FeeRate            *float64        `json:"fee_rate"`
	FixedFee           *float64        `json:"fixed_fee"`
	FederalBrackets    []BracketConfig `json:"federal_brackets,omitempty"`
	ProvincialBrackets []BracketConfig `json:"provincial_brackets,omitempty"`
}

// APICompareResponse represents the comparison results
type APICompareResponse struct {
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
	TaxYear   int                `json:"tax_year,omitempty"`
	Result    *CalculationResult `json:"result,omitempty"`
	Provinces []ProvinceResult   `json:"provinces,omitempty"`
	Sweep     []SweepPoint       `json:"sweep,omitempty"`
}

// APIJurisdiction is a registry entry for the UI dropdown
type APIJurisdiction struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Brackets []BracketConfig `json:"brackets"`
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/jurisdictions", ws.handleJurisdictions)
	mux.HandleFunc("/api/compare", ws.handleCompare)
	mux.HandleFunc("/api/schedule", ws.handleSchedule)
	mux.HandleFunc("/api/export-pdf", ws.handleExportPDF)
	return mux
}

// Start starts the web server, opens the browser, and blocks
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	log.Printf("Starting web server on %s", listener.Addr().String())
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	return http.Serve(listener, ws.routes())
}

// StartForEmbedded starts the server and returns the URL and a cleanup
// function. Unlike Start(), this does NOT open the browser and does NOT block.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	log.Printf("Starting embedded web server on %s", listener.Addr().String())

	server := &http.Server{Handler: ws.routes()}
	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return url, cleanup, nil
}

// listen binds the configured address and derives a browser-friendly URL
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}
	return listener, url, nil
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ws.config); err != nil {
		log.Printf("Error encoding config response: %v", err)
	}
}

// handleJurisdictions returns the registry for the UI dropdown
func (ws *WebServer) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	registry, err := ws.config.BuildRegistry()
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	var out []APIJurisdiction
	for _, j := range registry.All() {
		brackets := make([]BracketConfig, len(j.Brackets))
		for i, b := range j.Brackets {
			brackets[i] = BracketConfig{Threshold: b.Threshold, Rate: b.Rate}
		}
		out = append(out, APIJurisdiction{Code: j.Code, Name: j.Name, Brackets: brackets})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("Error encoding jurisdictions response: %v", err)
	}
}

// buildInput assembles calculator inputs from an API request, filling fee
// defaults from the server config
func (ws *WebServer) buildInput(req *APICompareRequest) (CalculationInput, BracketTable, *Registry, error) {
	config := *ws.config
	config.Scenario.Income = req.Income
	config.Scenario.Expense = req.Expense
	if req.Jurisdiction != "" {
		config.Scenario.Jurisdiction = strings.ToUpper(req.Jurisdiction)
	}
	if req.FeeRate != nil {
		config.HSA.FeeRate = *req.FeeRate
	}
	if req.FixedFee != nil {
		config.HSA.FixedFee = *req.FixedFee
	}
	if len(req.FederalBrackets) > 0 {
		config.FederalBrackets = req.FederalBrackets
	}
	if len(req.ProvincialBrackets) > 0 {
		config.ProvincialBrackets = req.ProvincialBrackets
	}

	federal, err := config.FederalTable()
	if err != nil {
		return CalculationInput{}, nil, nil, err
	}
	registry, err := config.BuildRegistry()
	if err != nil {
		return CalculationInput{}, nil, nil, err
	}
	return config.Input(), federal, registry, nil
}

// handleCompare runs the comparison for one scenario
func (ws *WebServer) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APICompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	input, federal, registry, err := ws.buildInput(&req)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	result, err := Compare(input, federal, registry)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	provinces, err := CompareAllProvinces(input, federal, registry)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	expenseMax := ws.config.Schedule.ExpenseMax
	if input.Expense*2 > expenseMax {
		expenseMax = input.Expense * 2
	}
	sweep, err := BreakEvenSweep(input, federal, registry, expenseMax, 20)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APICompareResponse{
		Success:   true,
		TaxYear:   TaxYear,
		Result:    &result,
		Provinces: provinces,
		Sweep:     sweep,
	})
}

// handleSchedule returns the rate schedule for a jurisdiction
func (ws *WebServer) handleSchedule(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.URL.Query().Get("jurisdiction"))
	if code == "" {
		code = ws.config.Scenario.Jurisdiction
	}

	registry, err := ws.config.BuildRegistry()
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}
	jurisdiction, err := registry.Lookup(code)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}
	federal, err := ws.config.FederalTable()
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	sc := ws.config.Schedule
	points := RateSchedule(sc.IncomeMin, sc.IncomeMax, sc.IncomeStep, federal, jurisdiction.Brackets)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

// handleExportPDF generates a PDF report and streams it back
func (ws *WebServer) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APICompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	input, federal, registry, err := ws.buildInput(&req)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}
	result, err := Compare(input, federal, registry)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}
	jurisdiction, err := registry.Lookup(input.Jurisdiction)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	data, err := PDFReportBytes(input, jurisdiction, result)
	if err != nil {
		sendJSONError(w, "PDF generation failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="hsa-comparison.pdf"`)
	w.Write(data)
}

// sendJSONError writes a JSON error response
func sendJSONError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APICompareResponse{Success: false, Error: message})
}
