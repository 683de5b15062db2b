package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFolderID          = "folder_id"
	KeyFolderIDHint      = "folder_id_hint"
	KeySavePath          = "save_path"
	KeySavePathHint      = "save_path_hint"
	KeyBrowse            = "browse"
	KeyStart             = "start"
	KeyDownloading       = "downloading"
	KeyProgressLog       = "progress_log"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAutoOpenFolder    = "auto_open_folder"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInputError        = "input_error"
	KeyPleaseEnterFolder = "please_enter_folder"
	KeyPleaseChoosePath  = "please_choose_path"
	KeyInvalidFolder     = "invalid_folder"
	KeyAlreadyRunning    = "already_running"
	KeyRunFinished       = "run_finished"
	KeyChooseSaveFolder  = "choose_save_folder"
	KeyErrorOpenFolder   = "error_open_folder"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
		"ru": "Русский",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Google Drive CSV Downloader",
		KeyFolderID:          "Google Drive folder ID:",
		KeyFolderIDHint:      "https://drive.google.com/drive/folders/<folder ID>",
		KeySavePath:          "Save path:",
		KeySavePathHint:      "Folder for the CSV files",
		KeyBrowse:            "Browse",
		KeyStart:             "Start download",
		KeyDownloading:       "Downloading...",
		KeyProgressLog:       "Progress log:",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAutoOpenFolder:    "Open the save folder when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInputError:        "Input error",
		KeyPleaseEnterFolder: "Please enter a Google Drive folder ID.",
		KeyPleaseChoosePath:  "Please choose where to save the CSV files.",
		KeyInvalidFolder:     "Not a Google Drive folder ID or link",
		KeyAlreadyRunning:    "A download is already running.",
		KeyRunFinished:       "Finished",
		KeyChooseSaveFolder:  "Choose the save folder",
		KeyErrorOpenFolder:   "Could not open the save folder",
	}

	l.texts["ko"] = map[string]string{
		KeyAppTitle:          "Google Drive CSV 다운로더",
		KeyFolderID:          "Google Drive 폴더 ID:",
		KeyFolderIDHint:      "https://drive.google.com/drive/folders/여기에_있는_ID_입력",
		KeySavePath:          "저장 경로:",
		KeySavePathHint:      "CSV 파일을 저장할 폴더",
		KeyBrowse:            "경로 선택",
		KeyStart:             "다운로드 시작",
		KeyDownloading:       "다운로드 중...",
		KeyProgressLog:       "진행 상황 로그:",
		KeySettings:          "설정",
		KeyFile:              "파일",
		KeyLanguage:          "언어",
		KeyAutoOpenFolder:    "완료 후 저장 폴더 열기",
		KeySave:              "저장",
		KeyCancel:            "취소",
		KeySettingsSaved:     "설정이 저장되었습니다!",
		KeyInputError:        "입력 오류",
		KeyPleaseEnterFolder: "Google Drive 폴더 ID를 입력해주세요.",
		KeyPleaseChoosePath:  "CSV 파일을 저장할 경로를 선택해주세요.",
		KeyInvalidFolder:     "올바른 Google Drive 폴더 ID 또는 링크가 아닙니다",
		KeyAlreadyRunning:    "이미 다운로드가 진행 중입니다.",
		KeyRunFinished:       "작업 완료",
		KeyChooseSaveFolder:  "저장할 폴더를 선택하세요",
		KeyErrorOpenFolder:   "저장 폴더를 열 수 없습니다",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик CSV из Google Drive",
		KeyFolderID:          "ID папки Google Drive:",
		KeyFolderIDHint:      "https://drive.google.com/drive/folders/<ID папки>",
		KeySavePath:          "Путь сохранения:",
		KeySavePathHint:      "Папка для CSV файлов",
		KeyBrowse:            "Обзор",
		KeyStart:             "Начать загрузку",
		KeyDownloading:       "Загрузка...",
		KeyProgressLog:       "Журнал выполнения:",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAutoOpenFolder:    "Открыть папку после завершения",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInputError:        "Ошибка ввода",
		KeyPleaseEnterFolder: "Пожалуйста, введите ID папки Google Drive.",
		KeyPleaseChoosePath:  "Пожалуйста, выберите папку для CSV файлов.",
		KeyInvalidFolder:     "Это не ID и не ссылка на папку Google Drive",
		KeyAlreadyRunning:    "Загрузка уже выполняется.",
		KeyRunFinished:       "Готово",
		KeyChooseSaveFolder:  "Выберите папку сохранения",
		KeyErrorOpenFolder:   "Не удалось открыть папку сохранения",
	}
}
