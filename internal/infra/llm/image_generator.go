package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"showroom/config"
	"showroom/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const defaultImageModel = openai.CreateImageModelDallE3

// housePrompts maps the visualizer house styles to scene descriptions.
var housePrompts = map[string]string{
	"minimalist":          "a clean, minimalist modern house with large white volumes and floor-to-ceiling glass",
	"brutalist":           "a sophisticated brutalist mansion with exposed raw concrete textures and sharp geometric angles",
	"scandinavian":        "a warm Scandinavian-style home featuring light wood cladding, pitched roofs, and cozy lighting",
	"mid-century-modern":  "a classic mid-century modern residence with horizontal lines, open floor plans, and stone accents",
	"contemporary-luxury": "a high-end contemporary luxury villa with infinity pools, cantilevered decks, and premium stone finishes",
}

// imageGenerator implements service.ImageGenerator on the OpenAI image API.
type imageGenerator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewImageGenerator is the constructor for imageGenerator.
func NewImageGenerator(cfg *config.Config, logger *slog.Logger) service.ImageGenerator {
	generator := &imageGenerator{
		model:  defaultImageModel,
		logger: logger,
	}

	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		logger.Warn("openai not configured, visualizer disabled")

		return generator
	}

	generator.client = openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.ImageModel != "" {
		generator.model = cfg.OpenAI.ImageModel
	}

	return generator
}

// Enabled reports whether an API key is configured.
func (g *imageGenerator) Enabled() bool {
	return g.client != nil
}

// Generate renders the scene and returns the image as a data URL.
func (g *imageGenerator) Generate(ctx context.Context, req *service.VisualRequest) (string, error) {
	if g.client == nil {
		return "", errors.New("image generator is not configured")
	}

	response, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.model,
		Prompt:         buildVisualPrompt(req),
		N:              1,
		Size:           openai.CreateImageSize1792x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", errors.Wrap(err, "create image")
	}
	if len(response.Data) == 0 || response.Data[0].B64JSON == "" {
		return "", errors.New("image generation returned no image data")
	}

	return "data:image/png;base64," + response.Data[0].B64JSON, nil
}

// buildVisualPrompt assembles the architectural rendering instructions from
// the request.
func buildVisualPrompt(req *service.VisualRequest) string {
	housePrompt, ok := housePrompts[req.HouseStyle]
	if !ok {
		housePrompt = housePrompts["minimalist"]
	}

	metalColor := req.MetalColor
	if metalColor == "" {
		metalColor = "Urban Gray (UC)"
	}

	var roofPanelDesc string
	switch req.RoofPanelType {
	case "aluminum":
		panelColor := req.AluminumPanelColor
		if panelColor == "" {
			panelColor = "Urban Gray Aluminum"
		}
		roofPanelDesc = fmt.Sprintf("The roof is made of %s aluminum panels.", strings.ToLower(panelColor))
	case "polycarbonate":
		panelType := req.PolycarbonatePanelType
		if panelType == "" {
			panelType = "Blue Panel"
		}
		roofPanelDesc = fmt.Sprintf("The roof is made of %s polycarbonate (Lexan) panels, which are translucent and provide natural light filtering.", strings.ToLower(panelType))
	}

	return fmt.Sprintf(`Architectural visualization task:
1. THE HOUSE: Create a rendering of %s.
2. THE CARPORT: Integrate the %q aluminum carport design. The carport frame is %s. %s The carport structure should maintain its exact design and proportions.
3. INTEGRATION: Position this carport at the %s of the house.
4. ENVIRONMENT: The scene should be shot in high-quality architectural photography style, during blue hour with warm interior lights glowing.`,
		housePrompt, req.CarportName, strings.ToLower(metalColor), roofPanelDesc, req.Placement)
}
