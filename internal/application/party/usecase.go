package party

import (
	"context"
	"fmt"
	"time"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/ports"
	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/repository"
	"github.com/cadastra/cadastro-api/pkg/validators"
)

// ParteUseCase resolve nomes a partir de documentos fiscais e extrai dados
// estruturados de texto livre via LLM.
type ParteUseCase struct {
	parteRepo repository.ParteRepository
	llm       ports.LLMService
}

// NewParteUseCase constrói o caso de uso de partes.
func NewParteUseCase(parteRepo repository.ParteRepository, llm ports.LLMService) *ParteUseCase {
	return &ParteUseCase{parteRepo: parteRepo, llm: llm}
}

// BuscarPorDocumento limpa o documento e resolve o nome: CPF (11 dígitos) →
// nome da pessoa física; CNPJ (14) → razão social. Documento com outro
// comprimento é ErrDocumentoInvalido; parte inexistente devolve Name nulo.
func (uc *ParteUseCase) BuscarPorDocumento(ctx context.Context, documento string) (*dto.ParteSearchResponse, error) {
	normalizado := validators.LimparDocumento(documento)

	switch {
	case validators.IsCPF(normalizado):
		pf, err := uc.parteRepo.GetPessoaFisicaByCPF(ctx, normalizado)
		if err != nil {
			return nil, err
		}
		if pf == nil {
			return &dto.ParteSearchResponse{}, nil
		}
		return &dto.ParteSearchResponse{Name: &pf.Nome}, nil

	case validators.IsCNPJ(normalizado):
		pj, err := uc.parteRepo.GetPessoaJuridicaByCNPJ(ctx, normalizado)
		if err != nil {
			return nil, err
		}
		if pj == nil {
			return &dto.ParteSearchResponse{}, nil
		}
		return &dto.ParteSearchResponse{Name: &pj.RazaoSocial}, nil

	default:
		return nil, domain.ErrDocumentoInvalido
	}
}

// Extrair valida a entrada e delega ao serviço de LLM. Envolve o contexto com
// um timeout de 10 s: a chamada externa não pode bloquear os goroutines do
// servidor além disso.
func (uc *ParteUseCase) Extrair(ctx context.Context, req dto.ParteExtractRequest) (*dto.ParteExtractDTO, error) {
	if req.Texto == "" {
		return nil, fmt.Errorf("%w: texto é obrigatório", domain.ErrEntradaInvalida)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.llm.ExtractParte(ctx, req.Texto)
	if err != nil {
		return nil, fmt.Errorf("extração IA: %w", err)
	}
	return result, nil
}
