package scraper

// DefaultCategories é a lista de buscas varridas quando nenhuma é passada
// na linha de comando.
var DefaultCategories = []string{
	"laptops",
	"headphones",
	"smartphones",
	"monitors",
	"keyboards",
	"coffee makers",
	"air fryers",
	"vacuum cleaners",
	"office chairs",
	"running shoes",
}
