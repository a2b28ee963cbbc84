package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/anjiri1684/exercise_platform/configs"
	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CheckAndGenerateCertificate issues a completion certificate once a team has
// a correct answer for every question of the exercise the answer belongs to.
func CheckAndGenerateCertificate(answer models.Answer) {
	var question models.Question
	if err := database.DB.Preload("Exercise").First(&question, "id = ?", answer.QuestionID).Error; err != nil {
		log.Printf("🔥 Failed to load question for certificate check: %v", err)
		return
	}

	var totalQuestions int64
	database.DB.Model(&models.Question{}).
		Where("exercise_id = ?", question.ExerciseID).
		Count(&totalQuestions)

	var completedQuestions int64
	database.DB.Model(&models.Answer{}).
		Joins("JOIN questions on answers.question_id = questions.id").
		Where("answers.team_id = ? AND answers.correct = ? AND questions.exercise_id = ?",
			answer.TeamID, true, question.ExerciseID).
		Distinct("answers.question_id").
		Count(&completedQuestions)

	if totalQuestions == 0 || completedQuestions < totalQuestions {
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", answer.TeamID).Error; err != nil {
		log.Printf("🔥 Failed to load team for certificate check: %v", err)
		return
	}

	title := fmt.Sprintf("%s - Completed by %s", question.Exercise.Title, team.Name)

	var existingCert models.Certificate
	if err := database.DB.Where("team_id = ? AND exercise_id = ?", answer.TeamID, question.ExerciseID).First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(team.Name, question.Exercise.Title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, team.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		TeamID:         team.ID,
		ExerciseID:     question.ExerciseID,
		Title:          title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for team %s: %v", team.ID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for team %s.", title, team.ID)
	}
}

func generateCertificateHTML(teamName, exerciseTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		TeamName       string
		ExerciseTitle  string
		CompletionDate string
	}{
		TeamName:       teamName,
		ExerciseTitle:  exerciseTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, teamID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", teamID, uuid.New().String()),
		Folder:       "exercise_platform_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
