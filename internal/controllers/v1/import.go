package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/importer"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/snapshot"
	ez_uuid "github.com/meu-painel/backend/internal/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// statementSuffixes are the accepted file name suffixes for bank statements.
var statementSuffixes = []string{".ofx", ".qfx"}

func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)
	}
	{
		r.OPTIONS("/ofx", OptionsImportOFX)
		r.POST("/ofx", ImportOFX)
		r.OPTIONS("/snapshot", OptionsImportSnapshot)
		r.POST("/snapshot", ImportSnapshot)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/ofx [options]
func OptionsImportOFX(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/snapshot [options]
func OptionsImportSnapshot(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import API overview
// @Description	Returns general information about the import endpoints
// @Tags			Import
// @Success		200	{object}	ImportLinksResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, ImportLinksResponse{
		Links: ImportLinks{
			OFX:      url + "/v1/import/ofx",
			Snapshot: url + "/v1/import/snapshot",
		},
	})
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	name := strings.ToLower(formFile.Filename)
	supported := false
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			supported = true
			break
		}
	}

	if !supported {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	return formFile.Open()
}

// knownHashes returns the import hashes of all transactions of the profile.
func knownHashes(profileID uuid.UUID) (map[string]bool, error) {
	var hashes []string
	err := models.DB.Model(&models.Transaction{}).
		Where(&models.Transaction{ProfileID: profileID}).
		Where("import_hash != ''").
		Pluck("import_hash", &hashes).Error
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		known[h] = true
	}

	return known, nil
}

// @Summary		Import bank statement
// @Description	Imports the transactions of an OFX or QFX bank statement into a profile. Categories are set by the category rules, transactions that were imported before are skipped.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		404		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Param			profile	query		string	true	"ID of the profile to import the transactions to"
// @Router			/v1/import/ofx [post]
func ImportOFX(c *gin.Context) {
	var query ImportOFXQuery
	if err := c.BindQuery(&query); err != nil || query.ProfileID == ez_uuid.Nil {
		s := errProfileParameter.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	var profile models.Profile
	err := models.DB.Where("id = ?", query.ProfileID.UUID).First(&profile).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, statementSuffixes...)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	lines, err := importer.ParseOFX(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	rules, err := models.ImportRules(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	known, err := knownHashes(profile.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	result := ImportResult{Transactions: []Transaction{}}
	var created []models.Transaction

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			if known[line.Hash] {
				result.Duplicates++
				continue
			}

			// Statements can contain the same line twice
			known[line.Hash] = true

			transaction := models.TransactionFromLedger(profile.ID, line.Transaction)
			transaction.Category = importer.Categorize(transaction.Description, rules)
			transaction.ImportHash = line.Hash

			if err := tx.Create(&transaction).Error; err != nil {
				return fmt.Errorf("statement line %s: %w", line.FITID, err)
			}

			created = append(created, transaction)
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	for _, transaction := range created {
		result.Transactions = append(result.Transactions, newTransaction(c, transaction))
	}

	log.Info().Str("profile", profile.ID.String()).Int("imported", len(created)).Int("duplicates", result.Duplicates).Msg("Imported bank statement")

	persist(profile.ID)
	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}

// @Summary		Import snapshot
// @Description	Creates a new profile from a snapshot document, e.g. one exported with GET /v1/profiles/{id}/snapshot
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201			{object}	ProfileResponse
// @Failure		400			{object}	ProfileResponse
// @Failure		500			{object}	ProfileResponse
// @Param			snapshot	body		ledger.PersonData	true	"Snapshot document"
// @Router			/v1/import/snapshot [post]
func ImportSnapshot(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &s,
		})
		return
	}

	doc, err := snapshot.ParseBytes(body)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &s,
		})
		return
	}

	// The document might have been exported from this instance, so all
	// resources get new IDs
	for i := range doc.Transactions {
		doc.Transactions[i].ID = ""
	}

	for i := range doc.SavingsGoals {
		doc.SavingsGoals[i].ID = ""
	}

	profile, err := models.CreateProfile(models.DB, uuid.Nil, doc)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	persist(profile.ID)

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusCreated, ProfileResponse{Data: &apiResource})
}
