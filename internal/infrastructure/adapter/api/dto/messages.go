package dto

// User-facing messages for the read paths. Kept in Portuguese, matching the
// audience of the first deployment.
const (
	MsgNoItemsFound  = "Não foram encontrados itens no banco de dados."
	MsgMappingFailed = "Houve um erro ao mapear os dados."
	MsgItemNotFound  = "O item solicitado não foi encontrado."
)
