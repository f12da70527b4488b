package main

import (
	"context"
	"fmt"
	"time"

	"github.com/provado/provado-backend/internal/config"
	"github.com/provado/provado-backend/internal/database"
	"github.com/provado/provado-backend/internal/logger"
	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/repository"
)

type seedQuestion struct {
	subject   string
	statement string
	options   [5]string
	correct   string
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	examRepo := repository.NewExamRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	fmt.Println("=== Seeding Sample Exam ===")

	cutoff := 70
	exam := &model.Exam{
		Contest:     "Analista Judiciário - TRF 3ª Região",
		Board:       "FCC",
		Year:        2024,
		CutoffScore: &cutoff,
	}
	if err := examRepo.Create(ctx, exam); err != nil {
		log.Fatal().Err(err).Msg("Failed to create exam")
	}
	fmt.Printf("Created exam %s (%s)\n", exam.ID, exam.Title())

	questions := []seedQuestion{
		{
			subject:   "Português",
			statement: "Assinale a alternativa em que todas as palavras estão grafadas corretamente.",
			options:   [5]string{"Excessão, previlégio, beneficiente", "Exceção, privilégio, beneficente", "Esceção, privilégio, beneficiente", "Exceção, previlégio, beneficente", "Excessão, privilégio, beneficente"},
			correct:   "B",
		},
		{
			subject:   "Português",
			statement: "No período \"Embora estivesse cansado, concluiu o relatório\", a oração subordinada expressa ideia de:",
			options:   [5]string{"Causa", "Condição", "Concessão", "Conformidade", "Consequência"},
			correct:   "C",
		},
		{
			subject:   "Direito Constitucional",
			statement: "Conforme a Constituição Federal, são direitos sociais, EXCETO:",
			options:   [5]string{"Educação", "Saúde", "Propriedade", "Moradia", "Lazer"},
			correct:   "C",
		},
		{
			subject:   "Direito Constitucional",
			statement: "O mandado de segurança será concedido para proteger direito líquido e certo quando o responsável pela ilegalidade for:",
			options:   [5]string{"Apenas autoridade pública", "Autoridade pública ou agente de pessoa jurídica no exercício de atribuições do Poder Público", "Qualquer particular", "Apenas agente político", "Apenas servidor efetivo"},
			correct:   "B",
		},
		{
			subject:   "Direito Administrativo",
			statement: "O atributo do ato administrativo que autoriza sua execução imediata, independentemente de ordem judicial, denomina-se:",
			options:   [5]string{"Presunção de legitimidade", "Imperatividade", "Autoexecutoriedade", "Tipicidade", "Discricionariedade"},
			correct:   "C",
		},
		{
			subject:   "Direito Administrativo",
			statement: "A investidura em cargo público efetivo depende de:",
			options:   [5]string{"Livre nomeação", "Aprovação prévia em concurso público", "Indicação da chefia imediata", "Contrato temporário", "Processo seletivo simplificado"},
			correct:   "B",
		},
		{
			subject:   "Raciocínio Lógico",
			statement: "Se todo A é B e algum B é C, pode-se concluir corretamente que:",
			options:   [5]string{"Todo A é C", "Algum A é C", "Nenhum A é C", "Nada se pode concluir sobre A e C", "Todo C é A"},
			correct:   "D",
		},
		{
			subject:   "Raciocínio Lógico",
			statement: "A negação da proposição \"Se chove, então o trânsito para\" é:",
			options:   [5]string{"Chove e o trânsito não para", "Não chove e o trânsito para", "Se não chove, o trânsito não para", "Chove ou o trânsito para", "Não chove ou o trânsito não para"},
			correct:   "A",
		},
		{
			subject:   "Informática",
			statement: "No contexto de segurança da informação, o princípio que garante que a informação não foi alterada indevidamente denomina-se:",
			options:   [5]string{"Confidencialidade", "Disponibilidade", "Integridade", "Autenticidade", "Irretratabilidade"},
			correct:   "C",
		},
		{
			subject:   "Informática",
			statement: "O protocolo padrão para transferência segura de páginas web é o:",
			options:   [5]string{"FTP", "HTTP", "SMTP", "HTTPS", "TELNET"},
			correct:   "D",
		},
	}

	successCount := 0
	for _, q := range questions {
		question := &model.Question{
			ExamID:        exam.ID,
			Subject:       q.subject,
			Statement:     q.statement,
			OptionA:       q.options[0],
			OptionB:       q.options[1],
			OptionC:       q.options[2],
			OptionD:       q.options[3],
			OptionE:       q.options[4],
			CorrectOption: q.correct,
		}
		if err := questionRepo.Create(ctx, question); err != nil {
			fmt.Printf("Error creating question (%s): %v\n", q.subject, err)
		} else {
			successCount++
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d questions.\n", successCount, len(questions))
}
