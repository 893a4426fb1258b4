package service

import (
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/repo"
	"context"

	"go.uber.org/zap"
)

// MsgUnknownType — сообщение для записи неизвестного варианта.
const MsgUnknownType = "the item type must be one of login, card, identity, secret"

// ItemInput — плоская форма записи любого варианта; Type выбирает, какие поля читаются.
type ItemInput struct {
	Type         model.ItemType `json:"type"`
	Name         string         `json:"name"`
	Notes        string         `json:"notes"`
	Key          string         `json:"key"`
	Email        string         `json:"email"`
	Username     string         `json:"username"`
	URL          string         `json:"url"`
	Number       string         `json:"number"`
	Holder       string         `json:"holder"`
	ExpiresOn    string         `json:"expires_on"`
	SecurityCode string         `json:"security_code"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	FullName     string         `json:"full_name"`
	BirthOn      string         `json:"birth_on"`
	IssuedOn     string         `json:"issued_on"`
	Secret       string         `json:"secret"`
}

// Login возвращает поля записи login.
func (in ItemInput) Login() LoginInput {
	return LoginInput{Name: in.Name, Email: in.Email, Username: in.Username, Key: in.Key, URL: in.URL, Notes: in.Notes}
}

// Card возвращает поля платёжной карты.
func (in ItemInput) Card() CardInput {
	return CardInput{
		Name: in.Name, Number: in.Number, Holder: in.Holder, ExpiresOn: in.ExpiresOn,
		SecurityCode: in.SecurityCode, Key: in.Key, Address: in.Address, Phone: in.Phone, Notes: in.Notes,
	}
}

// Identity возвращает поля документа.
func (in ItemInput) Identity() IdentityInput {
	return IdentityInput{
		Name: in.Name, Number: in.Number, FullName: in.FullName,
		BirthOn: in.BirthOn, IssuedOn: in.IssuedOn, ExpiresOn: in.ExpiresOn, Notes: in.Notes,
	}
}

// SecretItem возвращает поля секрета.
func (in ItemInput) SecretItem() SecretInput {
	return SecretInput{Name: in.Name, Secret: in.Secret, Key: in.Key, Notes: in.Notes}
}

// ItemCatalog — операции над записями всех вариантов.
// Адресация по позиции такая же, как у KeyRegistry.
type ItemCatalog struct {
	vaultID   int64
	repo      repo.ItemRepository
	validator *Validator
	logger    *zap.SugaredLogger
}

// NewItemCatalog создаёт каталог записей хранилища vaultID.
func NewItemCatalog(vaultID int64, r repo.ItemRepository, v *Validator, logger *zap.SugaredLogger) *ItemCatalog {
	return &ItemCatalog{vaultID: vaultID, repo: r, validator: v, logger: logger}
}

// List возвращает записи по возрастанию имени.
func (c *ItemCatalog) List(ctx context.Context) ([]view.Item, error) {
	items, err := c.repo.List(ctx, c.vaultID)
	if err != nil {
		return nil, logFailure(c.logger, "list items", err)
	}
	return view.FromItems(items), nil
}

// Get возвращает запись на позиции pos или ErrNotFound.
func (c *ItemCatalog) Get(ctx context.Context, pos int) (view.Item, error) {
	it, err := c.repo.GetAt(ctx, c.vaultID, pos)
	if err != nil {
		return view.Item{}, logFailure(c.logger, "get item", err)
	}
	return view.FromItem(*it), nil
}

// Delete удаляет запись на позиции pos.
func (c *ItemCatalog) Delete(ctx context.Context, pos int) error {
	it, err := c.repo.DeleteAt(ctx, c.vaultID, pos)
	if err != nil {
		return logFailure(c.logger, "delete item", err)
	}
	c.logger.Infow("item deleted", "type", it.Type, "name", it.Name)
	return nil
}

// Create проверяет и сохраняет запись варианта in.Type.
func (c *ItemCatalog) Create(ctx context.Context, in ItemInput) (string, error) {
	return c.dispatch(ctx, NewRecord, in)
}

// Edit проверяет и перезаписывает запись на позиции pos. Вариант может смениться.
func (c *ItemCatalog) Edit(ctx context.Context, pos int, in ItemInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	return c.dispatch(ctx, pos, in)
}

func (c *ItemCatalog) dispatch(ctx context.Context, pos int, in ItemInput) (string, error) {
	switch in.Type {
	case model.ItemLogin:
		return c.saveLogin(ctx, pos, in.Login())
	case model.ItemCard:
		return c.saveCard(ctx, pos, in.Card())
	case model.ItemIdentity:
		return c.saveIdentity(ctx, pos, in.Identity())
	case model.ItemSecret:
		return c.saveSecret(ctx, pos, in.SecretItem())
	}
	c.logger.Debugw("validation failed", "type", in.Type, "message", MsgUnknownType)
	return MsgUnknownType, nil
}

// CreateLogin проверяет и сохраняет запись login.
func (c *ItemCatalog) CreateLogin(ctx context.Context, in LoginInput) (string, error) {
	return c.saveLogin(ctx, NewRecord, in)
}

// EditLogin проверяет и перезаписывает запись на позиции pos как login.
func (c *ItemCatalog) EditLogin(ctx context.Context, pos int, in LoginInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	return c.saveLogin(ctx, pos, in)
}

// CreateCard проверяет и сохраняет платёжную карту.
func (c *ItemCatalog) CreateCard(ctx context.Context, in CardInput) (string, error) {
	return c.saveCard(ctx, NewRecord, in)
}

// EditCard проверяет и перезаписывает запись на позиции pos как карту.
func (c *ItemCatalog) EditCard(ctx context.Context, pos int, in CardInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	return c.saveCard(ctx, pos, in)
}

// CreateIdentity проверяет и сохраняет документ.
func (c *ItemCatalog) CreateIdentity(ctx context.Context, in IdentityInput) (string, error) {
	return c.saveIdentity(ctx, NewRecord, in)
}

// EditIdentity проверяет и перезаписывает запись на позиции pos как документ.
func (c *ItemCatalog) EditIdentity(ctx context.Context, pos int, in IdentityInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	return c.saveIdentity(ctx, pos, in)
}

// CreateSecret проверяет и сохраняет секрет.
func (c *ItemCatalog) CreateSecret(ctx context.Context, in SecretInput) (string, error) {
	return c.saveSecret(ctx, NewRecord, in)
}

// EditSecret проверяет и перезаписывает запись на позиции pos как секрет.
func (c *ItemCatalog) EditSecret(ctx context.Context, pos int, in SecretInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	return c.saveSecret(ctx, pos, in)
}

func (c *ItemCatalog) saveLogin(ctx context.Context, pos int, in LoginInput) (string, error) {
	msg, err := c.validator.ValidateLogin(ctx, pos, in)
	return c.persist(ctx, pos, in.Key, msg, err, func(it *model.Item) {
		resetPayload(it, model.ItemLogin, in.Name, in.Notes)
		it.Login = model.LoginData{Email: in.Email, Username: in.Username, URL: in.URL}
	})
}

func (c *ItemCatalog) saveCard(ctx context.Context, pos int, in CardInput) (string, error) {
	msg, err := c.validator.ValidateCard(ctx, pos, in)
	return c.persist(ctx, pos, in.Key, msg, err, func(it *model.Item) {
		resetPayload(it, model.ItemCard, in.Name, in.Notes)
		it.Card = model.CardData{
			Number:       in.Number,
			Holder:       in.Holder,
			SecurityCode: in.SecurityCode,
			ExpiresOn:    checkedDate(in.ExpiresOn),
			Address:      in.Address,
			Phone:        in.Phone,
		}
	})
}

func (c *ItemCatalog) saveIdentity(ctx context.Context, pos int, in IdentityInput) (string, error) {
	msg, err := c.validator.ValidateIdentity(ctx, pos, in)
	return c.persist(ctx, pos, "", msg, err, func(it *model.Item) {
		resetPayload(it, model.ItemIdentity, in.Name, in.Notes)
		it.Identity = model.IdentityData{
			Number:    in.Number,
			FullName:  in.FullName,
			BirthOn:   checkedDate(in.BirthOn),
			IssuedOn:  checkedDate(in.IssuedOn),
			ExpiresOn: checkedDate(in.ExpiresOn),
		}
	})
}

func (c *ItemCatalog) saveSecret(ctx context.Context, pos int, in SecretInput) (string, error) {
	msg, err := c.validator.ValidateSecret(ctx, pos, in)
	return c.persist(ctx, pos, in.Key, msg, err, func(it *model.Item) {
		resetPayload(it, model.ItemSecret, in.Name, in.Notes)
		it.Secret = model.SecretData{Payload: in.Secret}
	})
}

// persist сохраняет запись после проверки: создаёт при pos == NewRecord, иначе перезаписывает.
func (c *ItemCatalog) persist(ctx context.Context, pos int, keyName, msg string, verr error, fill func(*model.Item)) (string, error) {
	if verr != nil {
		return "", logFailure(c.logger, "validate item", verr)
	}
	if msg != "" {
		c.logger.Debugw("validation failed", "pos", pos, "message", msg)
		return msg, nil
	}

	if pos == NewRecord {
		it := &model.Item{VaultID: c.vaultID}
		fill(it)
		if err := c.repo.Create(ctx, it, keyName); err != nil {
			return "", logFailure(c.logger, "create item", err)
		}
		c.logger.Infow("item created", "type", it.Type, "name", it.Name)
		return "", nil
	}

	var saved model.Item
	err := c.repo.UpdateAt(ctx, c.vaultID, pos, keyName, func(it *model.Item) {
		fill(it)
		saved = *it
	})
	if err != nil {
		return "", logFailure(c.logger, "edit item", err)
	}
	c.logger.Infow("item updated", "pos", pos, "type", saved.Type, "name", saved.Name)
	return "", nil
}

// resetPayload задаёт общие поля и очищает группы полей всех вариантов.
func resetPayload(it *model.Item, t model.ItemType, name, notes string) {
	it.Type = t
	it.Name = name
	it.Note = notes
	it.Login = model.LoginData{}
	it.Card = model.CardData{}
	it.Identity = model.IdentityData{}
	it.Secret = model.SecretData{}
}

// checkedDate разбирает дату, уже прошедшую проверку валидатором.
func checkedDate(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}
