package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/ytget/catalog-dashboard/internal/config"
	"github.com/ytget/catalog-dashboard/internal/model"
)

// Localization manages UI text translations. It is safe for concurrent use;
// texts is read-only after construction.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyCatalogDirectory   = "catalog_directory"
	KeySelectDirectory    = "select_directory"
	KeyChange             = "change"
	KeyNotConnected       = "not_connected"
	KeyReload             = "reload"
	KeySearchPlaceholder  = "search_placeholder"
	KeyAllCategories      = "all_categories"
	KeySortNone           = "sort_none"
	KeySortName           = "sort_name"
	KeySortPriceAsc       = "sort_price_asc"
	KeySortPriceDesc      = "sort_price_desc"
	KeyPrev               = "prev"
	KeyNext               = "next"
	KeyPageOf             = "page_of"
	KeyShowing            = "showing"
	KeyNoProducts         = "no_products"
	KeyLoading            = "loading"
	KeyLoaded             = "loaded"
	KeySkippedFiles       = "skipped_files"
	KeyLoadFailed         = "load_failed"
	KeyView               = "view"
	KeyEdit               = "edit"
	KeyReveal             = "reveal"
	KeyOpen               = "open"
	KeyNotAvailableYet    = "not_available_yet"
	KeyErrorOpeningFile   = "error_opening_file"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeySettingsSaveFailed = "settings_save_failed"
	KeyStatusActive       = "status_active"
	KeyStatusInactive     = "status_inactive"
	KeyStatusOutOfStock   = "status_out_of_stock"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest
// supported language to the user's locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == config.DefaultLanguage {
		lang = systemLanguage(os.Getenv("LC_ALL"), os.Getenv("LANG"))
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

var supportedTags = []language.Tag{language.English, language.Russian, language.Portuguese}

// systemLanguage maps POSIX locale values like "ru_RU.UTF-8" to a supported
// language code, English when nothing matches.
func systemLanguage(locales ...string) string {
	matcher := language.NewMatcher(supportedTags)
	for _, locale := range locales {
		locale, _, _ = strings.Cut(locale, ".")
		locale = strings.ReplaceAll(locale, "_", "-")
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		_, index, confidence := matcher.Match(tag)
		if confidence == language.No {
			continue
		}
		base, _ := supportedTags[index].Base()
		return base.String()
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// Availability returns the localized label for a product status
func (l *Localization) Availability(a model.Availability) string {
	switch a {
	case model.AvailabilityInactive:
		return l.GetText(KeyStatusInactive)
	case model.AvailabilityOutOfStock:
		return l.GetText(KeyStatusOutOfStock)
	default:
		return l.GetText(KeyStatusActive)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return config.GetLanguageOptions()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Catalog Dashboard",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyCatalogDirectory:   "Catalog Directory",
		KeySelectDirectory:    "Select Directory",
		KeyChange:             "Change",
		KeyNotConnected:       "Not connected: select a catalog directory to load products",
		KeyReload:             "Reload",
		KeySearchPlaceholder:  "Search products by name",
		KeyAllCategories:      "All categories",
		KeySortNone:           "File order",
		KeySortName:           "Name",
		KeySortPriceAsc:       "Price: low to high",
		KeySortPriceDesc:      "Price: high to low",
		KeyPrev:               "Previous",
		KeyNext:               "Next",
		KeyPageOf:             "Page %d of %d",
		KeyShowing:            "Showing %d-%d of %d (%d total)",
		KeyNoProducts:         "No products match",
		KeyLoading:            "Loading catalog...",
		KeyLoaded:             "Loaded %d products from %d files",
		KeySkippedFiles:       "%d files could not be read",
		KeyLoadFailed:         "Failed to load catalog",
		KeyView:               "View",
		KeyEdit:               "Edit",
		KeyReveal:             "Show file",
		KeyOpen:               "Open file",
		KeyNotAvailableYet:    "Not available yet",
		KeyErrorOpeningFile:   "Error opening file",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved",
		KeySettingsSaveFailed: "Failed to save settings",
		KeyStatusActive:       "Active",
		KeyStatusInactive:     "Inactive",
		KeyStatusOutOfStock:   "Out of Stock",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Каталог товаров",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyCatalogDirectory:   "Папка каталога",
		KeySelectDirectory:    "Выбрать папку",
		KeyChange:             "Изменить",
		KeyNotConnected:       "Не подключено: выберите папку каталога, чтобы загрузить товары",
		KeyReload:             "Обновить",
		KeySearchPlaceholder:  "Поиск товаров по названию",
		KeyAllCategories:      "Все категории",
		KeySortNone:           "Порядок файлов",
		KeySortName:           "Название",
		KeySortPriceAsc:       "Цена: по возрастанию",
		KeySortPriceDesc:      "Цена: по убыванию",
		KeyPrev:               "Назад",
		KeyNext:               "Вперёд",
		KeyPageOf:             "Страница %d из %d",
		KeyShowing:            "Показано %d-%d из %d (всего %d)",
		KeyNoProducts:         "Нет подходящих товаров",
		KeyLoading:            "Загрузка каталога...",
		KeyLoaded:             "Загружено товаров: %d, файлов: %d",
		KeySkippedFiles:       "Не удалось прочитать файлов: %d",
		KeyLoadFailed:         "Не удалось загрузить каталог",
		KeyView:               "Просмотр",
		KeyEdit:               "Изменить",
		KeyReveal:             "Показать файл",
		KeyOpen:               "Открыть файл",
		KeyNotAvailableYet:    "Пока недоступно",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки сохранены",
		KeySettingsSaveFailed: "Не удалось сохранить настройки",
		KeyStatusActive:       "Активен",
		KeyStatusInactive:     "Неактивен",
		KeyStatusOutOfStock:   "Нет в наличии",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Painel de Catálogo",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyCatalogDirectory:   "Diretório do Catálogo",
		KeySelectDirectory:    "Selecionar Diretório",
		KeyChange:             "Alterar",
		KeyNotConnected:       "Não conectado: selecione um diretório de catálogo para carregar produtos",
		KeyReload:             "Recarregar",
		KeySearchPlaceholder:  "Buscar produtos pelo nome",
		KeyAllCategories:      "Todas as categorias",
		KeySortNone:           "Ordem dos arquivos",
		KeySortName:           "Nome",
		KeySortPriceAsc:       "Preço: menor para maior",
		KeySortPriceDesc:      "Preço: maior para menor",
		KeyPrev:               "Anterior",
		KeyNext:               "Próxima",
		KeyPageOf:             "Página %d de %d",
		KeyShowing:            "Mostrando %d-%d de %d (%d no total)",
		KeyNoProducts:         "Nenhum produto encontrado",
		KeyLoading:            "Carregando catálogo...",
		KeyLoaded:             "%d produtos carregados de %d arquivos",
		KeySkippedFiles:       "%d arquivos não puderam ser lidos",
		KeyLoadFailed:         "Falha ao carregar o catálogo",
		KeyView:               "Ver",
		KeyEdit:               "Editar",
		KeyReveal:             "Mostrar arquivo",
		KeyOpen:               "Abrir arquivo",
		KeyNotAvailableYet:    "Ainda não disponível",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas",
		KeySettingsSaveFailed: "Falha ao salvar configurações",
		KeyStatusActive:       "Ativo",
		KeyStatusInactive:     "Inativo",
		KeyStatusOutOfStock:   "Sem estoque",
	}
}
