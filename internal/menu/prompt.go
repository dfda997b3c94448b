package menu

import (
	"fmt"
	"strings"

	"mealia-backend/internal/models"
)

// vibes are the stylistic themes one of which is injected into each request
// to vary tone across menus.
var vibes = []string{
	"fresco y ligero",
	"reconfortante",
	"sabores intensos",
	"estilo mediterráneo",
	"energético",
}

// maxFavoriteHints caps how many recent favorites are mentioned in the
// prompt; they are sampled down so suggestions vary between requests.
const maxFavoriteHints = 3

// PromptInput is everything the builder needs; it performs no I/O.
type PromptInput struct {
	FirstName     string
	CalorieTarget int
	Inventory     []models.InventoryItem
	// Favorites holds the names of the user's most recently saved recipes,
	// up to 10. May be empty.
	Favorites []string
}

const systemPrompt = `Eres un chef privado y nutricionista de MealIA. Respondes siempre en español.

CONTRATO DE SALIDA
- Tu respuesta debe ser UN único objeto JSON válido, sin texto adicional, sin markdown, sin comas finales. Empieza con '{' y termina con '}'.
- Esquema exacto:
{
  "breakfast": { "name": string, "ingredients": [string], "steps": [string], "calories": integer },
  "lunch":     { "name": string, "ingredients": [string], "steps": [string], "calories": integer },
  "dinner":    { "name": string, "ingredients": [string], "steps": [string], "calories": integer },
  "note": string,
  "total_calories": integer
}

REGLAS DEL MENÚ
- Usa únicamente los ingredientes del inventario del usuario, más estos básicos de despensa: sal, pimienta, aceite y agua. Nada más.
- Las cantidades de cada ingrediente deben ser raciones individuales, no el total almacenado: si hay 1 kg de un ingrediente, una ración son 40-60 g.
- El almuerzo ("lunch") debe concentrar la mayor parte de las calorías del día.
- Cada plato lleva un nombre de carta de restaurante, atractivo y no literal.
- Cada paso de preparación indica una duración explícita y una señal sensorial de que está listo (olor, color o textura). Prohibido "cocinar hasta que esté hecho".
- El último paso de cada plato describe el emplatado y la presentación.
- "note" es un consejo breve del chef para el día.`

// BuildPrompt assembles the system and user messages for one generation
// request. Pure assembly: no I/O, no model call.
func BuildPrompt(in PromptInput, sampler Sampler) (string, string) {
	var b strings.Builder

	name := strings.TrimSpace(in.FirstName)
	if name == "" {
		name = "el usuario"
	}

	vibe := sampler.PickOne(vibes)

	fmt.Fprintf(&b, "Prepara el menú de hoy para %s: desayuno, almuerzo y cena, con un total aproximado de %d kcal y un estilo %s.\n\n",
		name, in.CalorieTarget, vibe)

	b.WriteString("Inventario disponible:\n")
	for _, item := range in.Inventory {
		fmt.Fprintf(&b, "- %s: %g %s\n", item.Name, item.Quantity, item.Unit)
	}

	if len(in.Favorites) > 0 {
		hints := sampler.PickSample(in.Favorites, maxFavoriteHints)
		b.WriteString("\nRecetas que le han gustado últimamente (inspírate, no las repitas tal cual): ")
		b.WriteString(strings.Join(hints, ", "))
		b.WriteString(".\n")
	}

	b.WriteString("\nDevuelve solo el objeto JSON del contrato.")

	return systemPrompt, b.String()
}
