package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/ports"
)

// Verificação em tempo de compilação de que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Você é um assistente jurídico brasileiro especializado em qualificação de partes.
Receberá um texto livre descrevendo uma pessoa física ou jurídica e deve devolver APENAS um objeto JSON válido (sem markdown, sem blocos de código` + " ```json" + `) com esta estrutura exata:
{
  "tipo": "<fisica ou juridica>",
  "nome": "<nome completo da pessoa física, ou vazio>",
  "razao_social": "<razão social da pessoa jurídica, ou vazio>",
  "cpf": "<CPF apenas dígitos (11), ou vazio>",
  "cnpj": "<CNPJ apenas dígitos (14), ou vazio>",
  "email": "<email, ou vazio>",
  "telefone": "<telefone apenas dígitos, ou vazio>",
  "confianca": <número decimal entre 0.0 e 1.0>
}

Regras:
- tipo: "fisica" quando houver CPF ou nome de pessoa; "juridica" quando houver CNPJ ou razão social.
- Documentos sempre sem pontuação. Não invente dados ausentes; deixe o campo vazio.
- confianca: 0.9–1.0 = certeza alta, 0.7–0.89 = provável, <0.7 = estimado.
- Não inclua texto fora do JSON. Apenas o objeto JSON.`
)

// AnthropicService adaptador que implementa LLMService usando a API REST da
// Anthropic (Claude). Usa net/http da biblioteca padrão; não requer SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador.
// model costuma ser "claude-3-5-haiku-20241022".
// Com apiKey vazio as chamadas devolvem erro descritivo em vez de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de rede de 25 s; o use case impõe ainda um context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrai o primeiro objeto JSON do texto mesmo que o modelo o
// envolva em markdown. Captura do primeiro '{' até o último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementação do porto ────────────────────────────────────────────────────

// ExtractParte envia o texto livre ao Claude e devolve os dados estruturados
// da parte identificada.
func (s *AnthropicService) ExtractParte(ctx context.Context, texto string) (*dto.ParteExtractDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("IA: ANTHROPIC_API_KEY não configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: texto},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("IA: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("IA: criar HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("IA: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("IA: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("IA: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("IA: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("IA: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("IA: desserializar resposta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("IA: o modelo devolveu resposta vazia")
	}

	rawText := anthResp.Content[0].Text

	// Parse seguro: extrair só o bloco JSON mesmo que o modelo adicione texto.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("IA: nenhum JSON válido na resposta do modelo (resposta: %s)", rawText)
	}

	var parte dto.ParteExtractDTO
	if err := json.Unmarshal([]byte(cleanJSON), &parte); err != nil {
		return nil, fmt.Errorf("IA: parsear JSON de extração: %w (JSON extraído: %s)", err, cleanJSON)
	}

	if parte.Confianca < 0 {
		parte.Confianca = 0
	} else if parte.Confianca > 1 {
		parte.Confianca = 1
	}

	return &parte, nil
}

// extractJSON extrai o primeiro objeto JSON bem formado de um texto livre.
// Estratégia em dois passos:
//  1. Remover blocos de código markdown (```json … ``` ou ``` … ```).
//  2. Usar regex para capturar o primeiro bloco { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
