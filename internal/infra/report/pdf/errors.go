package pdf

import "errors"

// ErrRender возвращается при ошибке построения PDF документа
var ErrRender = errors.New("report.pdf: failed to render report")
