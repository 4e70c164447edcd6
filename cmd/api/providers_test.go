package main

import (
	"context"
	"testing"

	pkgai "github.com/johnquangdev/meeting-action-assistant/pkg/ai"
	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

func TestProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		stt     string
		llm     string
		wantSTT string
		wantLLM string
		wantErr bool
	}{
		{name: "defaults", stt: config.STTProviderOpenAI, llm: config.LLMProviderOpenAI, wantSTT: "OpenAI", wantLLM: "OpenAI"},
		{name: "assemblyai and groq", stt: config.STTProviderAssemblyAI, llm: config.LLMProviderGroq, wantSTT: "AssemblyAI", wantLLM: "Groq"},
		{name: "gemini", stt: config.STTProviderOpenAI, llm: config.LLMProviderGemini, wantSTT: "OpenAI", wantLLM: "Gemini"},
		{name: "unknown", stt: "whisper-local", llm: config.LLMProviderOpenAI, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{AI: config.AIConfig{STTProvider: tt.stt, LLMProvider: tt.llm}}

			stt, err := newTranscriber(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newTranscriber() error = %v", err)
			}
			llm, err := newChatCompleter(context.Background(), cfg)
			if err != nil {
				t.Fatalf("newChatCompleter() error = %v", err)
			}

			if stt.Name() != tt.wantSTT || llm.Name() != tt.wantLLM {
				t.Fatalf("providers = %s/%s, want %s/%s", stt.Name(), llm.Name(), tt.wantSTT, tt.wantLLM)
			}
			if stt.Configured() || llm.Configured() {
				t.Fatal("providers without credentials must report unconfigured")
			}
		})
	}
}

func TestOpenAIModelsStayInTheirStage(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{
		STTProvider: config.STTProviderOpenAI,
		STTModel:    "whisper-large-v3",
		LLMProvider: config.LLMProviderOpenAI,
		LLMModel:    "llama-3.3-70b-versatile",
	}}

	stt, err := newTranscriber(cfg)
	if err != nil {
		t.Fatal(err)
	}
	llm, err := newChatCompleter(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	sttClient, ok := stt.(*pkgai.OpenAIClient)
	if !ok {
		t.Fatalf("transcriber is %T", stt)
	}
	llmClient, ok := llm.(*pkgai.OpenAIClient)
	if !ok {
		t.Fatalf("completer is %T", llm)
	}

	if sttClient.AudioModel() != "whisper-large-v3" {
		t.Errorf("transcriber audio model = %q", sttClient.AudioModel())
	}
	if sttClient.ChatModel() == "llama-3.3-70b-versatile" {
		t.Error("transcriber picked up LLM_MODEL")
	}
	if llmClient.ChatModel() != "llama-3.3-70b-versatile" {
		t.Errorf("completer chat model = %q", llmClient.ChatModel())
	}
	if llmClient.AudioModel() == "whisper-large-v3" {
		t.Error("completer picked up STT_MODEL")
	}
}
