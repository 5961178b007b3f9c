// Package records defines the structured records produced by the
// stealer-log normalization engine: per-file system metadata, extracted
// credential entries, and batch-level accounting.
package records

// Field names accepted by SystemInfo.Set. Adapters reference these instead
// of struct fields so label tables stay plain data.
const (
	FieldOS           = "os"
	FieldIPAddress    = "ip_address"
	FieldUsername     = "username"
	FieldCPU          = "cpu"
	FieldRAM          = "ram"
	FieldComputerName = "computer_name"
	FieldGPU          = "gpu"
	FieldCountry      = "country"
	FieldHWID         = "hwid"
	FieldFilePath     = "file_path"
	FieldAntivirus    = "antivirus"
)

// SystemInfo is one parsed host/system metadata record. Optional fields use
// the empty string for "absent"; a populated field is always a non-empty,
// already-cleaned value.
type SystemInfo struct {
	StealerType  string `json:"stealer_type"`
	OS           string `json:"os,omitempty"`
	IPAddress    string `json:"ip_address,omitempty"`
	Username     string `json:"username,omitempty"`
	CPU          string `json:"cpu,omitempty"`
	RAM          string `json:"ram,omitempty"`
	ComputerName string `json:"computer_name,omitempty"`
	GPU          string `json:"gpu,omitempty"`
	Country      string `json:"country,omitempty"`
	HWID         string `json:"hwid,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
	Antivirus    string `json:"antivirus,omitempty"`
	LogDate      string `json:"log_date,omitempty"` // YYYY-MM-DD
	LogTime      string `json:"log_time"`           // HH:mm:ss, never empty
}

// NewSystemInfo creates an empty record tagged with the detected stealer
// family. LogTime defaults to midnight.
func NewSystemInfo(stealerType string) *SystemInfo {
	return &SystemInfo{
		StealerType: stealerType,
		LogTime:     "00:00:00",
	}
}

// Set assigns value to the named field if the field is still empty.
// Returns true if the value was written. First-write-wins: later matches
// for an already-populated field are ignored so a duplicate or nested label
// cannot overwrite a good value with a worse one.
func (s *SystemInfo) Set(field, value string) bool {
	if value == "" {
		return false
	}
	p := s.fieldPtr(field)
	if p == nil || *p != "" {
		return false
	}
	*p = value
	return true
}

// Get returns the current value of the named field, or "" for unknown names.
func (s *SystemInfo) Get(field string) string {
	if p := s.fieldPtr(field); p != nil {
		return *p
	}
	return ""
}

// CleanFields runs the supplied cleaner over every optional field, replacing
// junk values with the empty string. This is the finalize pass applied once
// by the dispatch layer before the record is handed to storage.
func (s *SystemInfo) CleanFields(clean func(string) string) {
	for _, field := range []string{
		FieldOS, FieldIPAddress, FieldUsername, FieldCPU, FieldRAM,
		FieldComputerName, FieldGPU, FieldCountry, FieldHWID,
		FieldFilePath, FieldAntivirus,
	} {
		p := s.fieldPtr(field)
		*p = clean(*p)
	}
}

// IsEmpty reports whether no optional field and no log date was extracted.
func (s *SystemInfo) IsEmpty() bool {
	return s.OS == "" && s.IPAddress == "" && s.Username == "" &&
		s.CPU == "" && s.RAM == "" && s.ComputerName == "" &&
		s.GPU == "" && s.Country == "" && s.HWID == "" &&
		s.FilePath == "" && s.Antivirus == "" && s.LogDate == ""
}

func (s *SystemInfo) fieldPtr(field string) *string {
	switch field {
	case FieldOS:
		return &s.OS
	case FieldIPAddress:
		return &s.IPAddress
	case FieldUsername:
		return &s.Username
	case FieldCPU:
		return &s.CPU
	case FieldRAM:
		return &s.RAM
	case FieldComputerName:
		return &s.ComputerName
	case FieldGPU:
		return &s.GPU
	case FieldCountry:
		return &s.Country
	case FieldHWID:
		return &s.HWID
	case FieldFilePath:
		return &s.FilePath
	case FieldAntivirus:
		return &s.Antivirus
	}
	return nil
}

// CredentialRecord is one stored-credential entry extracted from a browser
// password dump. URL is always non-empty; Username and Password are always
// present but may be empty strings.
type CredentialRecord struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Browser  string `json:"browser,omitempty"`
	Domain   string `json:"domain,omitempty"`
	TLD      string `json:"tld,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

// RawFile is one input file as delivered by the upload collaborator.
// Content has already been decoded to UTF-8 text.
type RawFile struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// FileError records a single per-file parse failure inside a batch.
type FileError struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// BatchResult accumulates the outcome of one batch of files.
type BatchResult struct {
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Errors  []FileError `json:"errors,omitempty"`
}

// AddSuccess counts one successfully processed file.
func (b *BatchResult) AddSuccess() {
	b.Success++
}

// AddFailure counts one failed file and records its error.
func (b *BatchResult) AddFailure(fileName string, err error) {
	b.Failed++
	b.Errors = append(b.Errors, FileError{FileName: fileName, Error: err.Error()})
}

// Merge folds another result into this one. Used to combine per-worker
// results after a concurrent batch.
func (b *BatchResult) Merge(other *BatchResult) {
	b.Success += other.Success
	b.Failed += other.Failed
	b.Errors = append(b.Errors, other.Errors...)
}
