package app

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock implementations for MatchUseCase
type mockMatchService struct {
	mock.Mock
}

func (m *mockMatchService) Match(ctx context.Context, req *domain.MatchRequest) (*domain.MatchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResponse), args.Error(1)
}

type mockMatchOutputFormatter struct {
	mock.Mock
}

func (m *mockMatchOutputFormatter) Format(response *domain.MatchResponse, format domain.OutputFormat) (string, error) {
	args := m.Called(response, format)
	return args.String(0), args.Error(1)
}

func (m *mockMatchOutputFormatter) Write(response *domain.MatchResponse, format domain.OutputFormat, writer io.Writer) error {
	args := m.Called(response, format, writer)
	return args.Error(0)
}

type mockMatchConfigurationLoader struct {
	mock.Mock
}

func (m *mockMatchConfigurationLoader) LoadConfig(path string) (*domain.MatchRequest, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchRequest), args.Error(1)
}

func (m *mockMatchConfigurationLoader) LoadDefaultConfig() *domain.MatchRequest {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.MatchRequest)
}

func (m *mockMatchConfigurationLoader) MergeConfig(base *domain.MatchRequest, override *domain.MatchRequest) *domain.MatchRequest {
	args := m.Called(base, override)
	return args.Get(0).(*domain.MatchRequest)
}

// Helper functions
func setupMatchUseCaseMocks() (*MatchUseCase, *mockMatchService, *mockFileReader, *mockMatchOutputFormatter, *mockMatchConfigurationLoader) {
	service := &mockMatchService{}
	fileReader := &mockFileReader{}
	formatter := &mockMatchOutputFormatter{}
	configLoader := &mockMatchConfigurationLoader{}

	useCase := NewMatchUseCase(service, fileReader, formatter, configLoader)
	return useCase, service, fileReader, formatter, configLoader
}

func createValidMatchRequest() domain.MatchRequest {
	return domain.MatchRequest{
		Label:         "submission.py",
		Code:          "def add(a, b):\n    return a + b\n",
		CorpusPath:    "/test/corpus.jsonl",
		Language:      domain.LanguagePython,
		FlagThreshold: 0.75,
		OutputWriter:  os.Stdout,
		OutputFormat:  domain.OutputFormatText,
	}
}

func createMockMatchResponse() *domain.MatchResponse {
	matchedID := "assignment1/alice"
	matchedNodes := 18
	return &domain.MatchResponse{
		Label:            "submission.py",
		Found:            true,
		Score:            0.8812,
		Confidence:       domain.ConfidenceBandHigh,
		Flagged:          true,
		MatchedID:        &matchedID,
		SharedTokens:     15,
		TotalNodesTarget: 17,
		TotalNodesMatch:  &matchedNodes,
		CorpusSize:       42,
		SkippedTokens:    0,
		Duration:         5,
	}
}

func TestMatchUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mockMatchService, *mockFileReader, *mockMatchOutputFormatter, *mockMatchConfigurationLoader)
		request     domain.MatchRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "successful execution with valid request",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				service.On("Match", mock.Anything, mock.AnythingOfType("*domain.MatchRequest")).
					Return(createMockMatchResponse(), nil)
				formatter.On("Write", mock.Anything, domain.OutputFormatText, mock.AnythingOfType("*os.File")).Return(nil)
			},
			request:     createValidMatchRequest(),
			expectError: false,
		},
		{
			name: "validation error - empty corpus path",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				// No mocks needed - validation fails before any service calls
			},
			request: func() domain.MatchRequest {
				req := createValidMatchRequest()
				req.CorpusPath = ""
				return req
			}(),
			expectError: true,
			errorMsg:    "corpus_path cannot be empty",
		},
		{
			name: "validation error - nil output writer",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				// No mocks needed - validation fails before any service calls
			},
			request: func() domain.MatchRequest {
				req := createValidMatchRequest()
				req.OutputWriter = nil
				return req
			}(),
			expectError: true,
			errorMsg:    "output writer or output path is required",
		},
		{
			name: "configuration loading error",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadConfig", "/invalid/config.toml").
					Return((*domain.MatchRequest)(nil), errors.New("config file not found"))
			},
			request: func() domain.MatchRequest {
				req := createValidMatchRequest()
				req.ConfigPath = "/invalid/config.toml"
				return req
			}(),
			expectError: true,
			errorMsg:    "failed to load configuration",
		},
		{
			name: "match service error",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				service.On("Match", mock.Anything, mock.AnythingOfType("*domain.MatchRequest")).
					Return((*domain.MatchResponse)(nil), errors.New("corpus file not readable"))
			},
			request:     createValidMatchRequest(),
			expectError: true,
			errorMsg:    "corpus lookup failed",
		},
		{
			name: "output formatting error",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				service.On("Match", mock.Anything, mock.AnythingOfType("*domain.MatchRequest")).
					Return(createMockMatchResponse(), nil)
				formatter.On("Write", mock.Anything, domain.OutputFormatText, mock.AnythingOfType("*os.File")).
					Return(errors.New("write failed"))
			},
			request:     createValidMatchRequest(),
			expectError: true,
			errorMsg:    "failed to write output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, service, fileReader, formatter, configLoader := setupMatchUseCaseMocks()

			tt.setupMocks(service, fileReader, formatter, configLoader)

			err := useCase.Execute(context.Background(), tt.request)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}

			// Verify all mock expectations
			service.AssertExpectations(t)
			fileReader.AssertExpectations(t)
			formatter.AssertExpectations(t)
			configLoader.AssertExpectations(t)
		})
	}
}

func TestMatchUseCase_ExecuteAndReturn(t *testing.T) {
	useCase, service, fileReader, formatter, configLoader := setupMatchUseCaseMocks()

	configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
	service.On("Match", mock.Anything, mock.AnythingOfType("*domain.MatchRequest")).
		Return(createMockMatchResponse(), nil)

	response, err := useCase.ExecuteAndReturn(context.Background(), createValidMatchRequest())

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.True(t, response.Found)
	assert.Equal(t, 0.8812, response.Score)
	if assert.NotNil(t, response.MatchedID) {
		assert.Equal(t, "assignment1/alice", *response.MatchedID)
	}

	service.AssertExpectations(t)
	fileReader.AssertExpectations(t)
	formatter.AssertExpectations(t)
	configLoader.AssertExpectations(t)
}

func TestMatchUseCase_MatchFile(t *testing.T) {
	tests := []struct {
		name        string
		filePath    string
		setupMocks  func(*mockMatchService, *mockFileReader, *mockMatchOutputFormatter, *mockMatchConfigurationLoader)
		expectError bool
		errorMsg    string
	}{
		{
			name:     "successful file match",
			filePath: "/test/submission.py",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				fileReader.On("IsValidSourceFile", "/test/submission.py", domain.LanguagePython).Return(true)
				fileReader.On("ReadFile", "/test/submission.py").Return([]byte("def add(a, b):\n    return a + b\n"), nil)
				service.On("Match", mock.Anything, mock.MatchedBy(func(req *domain.MatchRequest) bool {
					return req.Label == "/test/submission.py" && req.Code != ""
				})).Return(createMockMatchResponse(), nil)
				formatter.On("Write", mock.Anything, domain.OutputFormatText, mock.AnythingOfType("*os.File")).Return(nil)
			},
			expectError: false,
		},
		{
			name:     "invalid source file",
			filePath: "/test/notes.md",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				fileReader.On("IsValidSourceFile", "/test/notes.md", domain.LanguagePython).Return(false)
			},
			expectError: true,
			errorMsg:    "not a valid python source file",
		},
		{
			name:     "file read error",
			filePath: "/test/submission.py",
			setupMocks: func(service *mockMatchService, fileReader *mockFileReader, formatter *mockMatchOutputFormatter, configLoader *mockMatchConfigurationLoader) {
				configLoader.On("LoadDefaultConfig").Return((*domain.MatchRequest)(nil))
				fileReader.On("IsValidSourceFile", "/test/submission.py", domain.LanguagePython).Return(true)
				fileReader.On("ReadFile", "/test/submission.py").Return([]byte{}, errors.New("permission denied"))
			},
			expectError: true,
			errorMsg:    "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, service, fileReader, formatter, configLoader := setupMatchUseCaseMocks()

			tt.setupMocks(service, fileReader, formatter, configLoader)

			req := createValidMatchRequest()
			req.Label = ""
			req.Code = ""
			err := useCase.MatchFile(context.Background(), tt.filePath, req)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}

			// Verify all mock expectations
			service.AssertExpectations(t)
			fileReader.AssertExpectations(t)
			formatter.AssertExpectations(t)
			configLoader.AssertExpectations(t)
		})
	}
}
