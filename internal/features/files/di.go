package files

import (
	cache_utils "novusfiles-backend/internal/util/cache"
	"novusfiles-backend/internal/util/logger"
)

const recordByTokenCachePrefix = "file_record_by_token:"

var fileRecordRepository = &FileRecordRepository{}
var fileStore = &FileStore{}

var fileService = &FileService{
	fileRecordRepository,
	fileStore,
	cache_utils.NewCacheUtil[FileRecord](
		cache_utils.GetValkeyClient(),
		recordByTokenCachePrefix,
	),
	logger.GetLogger(),
}

var fileController = &FileController{
	fileService,
}

func GetFileService() *FileService {
	return fileService
}

func GetFileController() *FileController {
	return fileController
}
