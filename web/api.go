package web

import (
	"cqlfilter/lexer"
	ownIo "cqlfilter/io"
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"io"
	"net/http"
)

const maxLengthOfPrintedFilter = 10000

type ErrorResponse struct {
	Error   string `json:"error"`
	Details error  `json:"details"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: err,
	}
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server without TLS support on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string) {
	r := initRouter()
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/tokenize", handleTokenize).Methods(http.MethodPost)
	return r
}

func handleTokenize(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")

	filterBytes, err := io.ReadAll(request.Body)
	if err != nil {
		sigolo.Errorf("Error reading HTTP body of request to '/tokenize': %+v", err)
		writeErrorResponse(writer, http.StatusInternalServerError, NewErrorResponse("Error reading HTTP body.", nil))
		return
	}

	filterString := string(filterBytes)

	trimmedFilterString := filterString
	filterRunes := []rune(filterString)
	if len(filterRunes) > maxLengthOfPrintedFilter {
		trimmedFilterString = string(filterRunes[:maxLengthOfPrintedFilter]) + "... [truncated]"
	}
	sigolo.Infof("Filter:\n%s", trimmedFilterString)

	tokens, err := lexer.Tokenize(filterString)
	if err != nil {
		sigolo.Errorf("Error tokenizing filter: %s", err)
		writeErrorResponse(writer, http.StatusBadRequest, NewErrorResponse(fmt.Sprintf("Error tokenizing filter: %s", err.Error()), err))
		return
	}

	err = ownIo.WriteTokensAsJson(tokens, writer)
	if err != nil {
		sigolo.Errorf("Error writing tokens: %+v", err)
		writeErrorResponse(writer, http.StatusInternalServerError, NewErrorResponse(fmt.Sprintf("Error writing tokens: %s", err.Error()), err))
	}
}

func writeErrorResponse(writer http.ResponseWriter, status int, response ErrorResponse) {
	writer.WriteHeader(status)

	errorResponseBytes, err := json.Marshal(response)
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
		return
	}

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
